package assessment

type CreateAssessmentRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	Content        string `json:"content" binding:"required"`
	Score          int    `json:"score" binding:"min=0,max=100"`
	AssessmentDate string `json:"assessment_date" binding:"required"`
}

type UpdateAssessmentRequest struct {
	Content        string `json:"content" binding:"required"`
	Score          int    `json:"score" binding:"min=0,max=100"`
	AssessmentDate string `json:"assessment_date" binding:"required"`
}

type AssessmentResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Content        string `json:"content"`
	Score          int    `json:"score"`
	AssessmentDate string `json:"assessment_date"`
	AssessorID     string `json:"assessor_id"`
}
