package allocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func TestService_Method(t *testing.T) {
	srv := New()
	for _, op := range model.Operations(model.FamilyMemory) {
		t.Run(string(op), func(t *testing.T) {
			method, err := srv.Method(string(op))
			require.NoError(t, err)
			output := &Output{}
			require.NoError(t, method(context.Background(), &Input{Processes: withSizes(10, 20)}, output))
			assert.Len(t, output.Memory, model.DefaultCapacity)
			assert.Equal(t, []int{0, 10}, positions(output.Results))
		})
	}
	_, err := srv.Method("nextfit")
	assert.Error(t, err)
}
