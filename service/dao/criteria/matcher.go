package criteria

import (
	"strings"

	"github.com/viant/ossim/service/dao"
)

// Parameter names understood by the process DAO.
const (
	Status = "Status"
	Name   = "Name"
)

// FilterByStatus reports whether status satisfies the Status parameter, if
// any. A parameter value may be a single status or a list.
func FilterByStatus(status string, parameters []*dao.Parameter) bool {
	return matchParameter(Status, status, parameters)
}

// FilterByName reports whether name satisfies the Name parameter, if any.
func FilterByName(name string, parameters []*dao.Parameter) bool {
	return matchParameter(Name, name, parameters)
}

func matchParameter(name, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		for _, candidate := range parameter.Values() {
			if strings.EqualFold(value, candidate) {
				return true
			}
		}
		return false
	}
	return true
}
