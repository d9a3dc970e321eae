package dao

// Parameter narrows a List call, Value holds a string or a []string.
type Parameter struct {
	Name  string
	Value interface{}
}

// Values returns the parameter value as a list, nil for unsupported types
func (p *Parameter) Values() []string {
	switch actual := p.Value.(type) {
	case string:
		return []string{actual}
	case []string:
		return actual
	}
	return nil
}

func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
