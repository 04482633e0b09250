package models

// Interpretation pairs one measured finding with its implication for
// automated readers. Wording stays descriptive, never prescriptive.
type Interpretation struct {
	Category    string `json:"category" yaml:"category"`
	Finding     string `json:"finding" yaml:"finding"`
	Implication string `json:"implication" yaml:"implication"`
}
