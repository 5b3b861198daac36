package models

// AlgorithmEntry holds the cost profile of a sorting or searching algorithm.
// Sorting entries set Stable; searching entries set Requirement.
type AlgorithmEntry struct {
	Name        string `json:"name" yaml:"name"`
	Best        string `json:"best" yaml:"best"`
	Average     string `json:"average" yaml:"average"`
	Worst       string `json:"worst" yaml:"worst"`
	Space       string `json:"space" yaml:"space"`
	Stable      *bool  `json:"stable,omitempty" yaml:"stable,omitempty"`
	Requirement string `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Note        string `json:"note" yaml:"note"`
}

// EntryName implements Named.
func (a AlgorithmEntry) EntryName() string { return a.Name }

// OperationCosts are the four basic operation costs of a data structure.
type OperationCosts struct {
	Access string `json:"access" yaml:"access"`
	Search string `json:"search" yaml:"search"`
	Insert string `json:"insert" yaml:"insert"`
	Delete string `json:"delete" yaml:"delete"`
}

// Notations returns the costs in access, search, insert, delete order.
func (c OperationCosts) Notations() []string {
	return []string{c.Access, c.Search, c.Insert, c.Delete}
}

// DataStructureEntry holds average and worst operation costs of a data structure.
type DataStructureEntry struct {
	Name    string         `json:"name" yaml:"name"`
	Average OperationCosts `json:"average" yaml:"average"`
	Worst   OperationCosts `json:"worst" yaml:"worst"`
	Space   string         `json:"space" yaml:"space"`
}

// EntryName implements Named.
func (d DataStructureEntry) EntryName() string { return d.Name }

// Named is any catalog entry that can be searched by name.
type Named interface {
	EntryName() string
}
