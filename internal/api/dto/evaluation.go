package dto

type AssignmentResponse struct {
	N1 int `json:"n1"`
	N2 int `json:"n2"`
	N3 int `json:"n3"`
}

type ScenarioResponse struct {
	Label      string             `json:"label"`
	Assignment AssignmentResponse `json:"assignment"`
	Cost       float64            `json:"cost"`
}

type EvaluationResponse struct {
	Drivers   int                `json:"drivers"`
	Evaluated int                `json:"evaluated"`
	Scenarios []ScenarioResponse `json:"scenarios"`
}
