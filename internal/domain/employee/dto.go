package employee

// ========================================
// EMPLOYEE DTOs
// ========================================

type EmployeeResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	HourlyRate  string  `json:"hourly_rate"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		DisplayName: e.DisplayName,
		HourlyRate:  e.Rate().StringFixed(2),
		AvatarURL:   e.AvatarURL,
	}
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
