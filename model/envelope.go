package model

// Envelope is the uniform result of a single run. Optional fields are set
// only by the engine family that produced them.
type Envelope struct {
	Operation  Operation `json:"operation" yaml:"operation"`
	Algorithm  string    `json:"algorithm" yaml:"algorithm"`
	Schedule   Timeline  `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Memory     Memory    `json:"memory,omitempty" yaml:"memory,omitempty,flow"`
	Allocation Matrix    `json:"allocation,omitempty" yaml:"allocation,omitempty"`
	Request    Matrix    `json:"request,omitempty" yaml:"request,omitempty"`
	Available  Vector    `json:"available,omitempty" yaml:"available,omitempty,flow"`
	Deadlocked []int     `json:"deadlocked,omitempty" yaml:"deadlocked,omitempty,flow"`
	Results    Processes `json:"results" yaml:"results"`
	Metrics    Metrics   `json:"metrics" yaml:"metrics"`
}

// HasSchedule returns true if the envelope carries a timeline
func (e *Envelope) HasSchedule() bool {
	return e != nil && e.Schedule != nil
}

// HasMemory returns true if the envelope carries a memory array
func (e *Envelope) HasMemory() bool {
	return e != nil && e.Memory != nil
}

// HasMatrices returns true if the envelope carries deadlock matrices
func (e *Envelope) HasMatrices() bool {
	return e != nil && e.Allocation != nil
}

// Clone returns a deep copy of the envelope
func (e *Envelope) Clone() *Envelope {
	if e == nil {
		return nil
	}
	ret := *e
	if e.Schedule != nil {
		ret.Schedule = append(Timeline(nil), e.Schedule...)
	}
	ret.Memory = e.Memory.Clone()
	ret.Allocation = e.Allocation.Clone()
	ret.Request = e.Request.Clone()
	ret.Available = e.Available.Clone()
	if e.Deadlocked != nil {
		ret.Deadlocked = append([]int{}, e.Deadlocked...)
	}
	ret.Results = e.Results.Clone()
	ret.Metrics = *e.Metrics.Clone()
	return &ret
}
