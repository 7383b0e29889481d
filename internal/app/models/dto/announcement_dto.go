package dto

// FilterDataRequest narrows the audience of an announcement
type FilterDataRequest struct {
	Branches        []string `json:"branches" binding:"omitempty,dive,branch"`
	GraduationYears []int    `json:"graduationYears" binding:"omitempty,dive,min=2000,max=2100"`
}

// CreateAnnouncementRequest represents announcement creation data
type CreateAnnouncementRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Audience    string             `json:"audience" binding:"required,audience"`
	FilterData  *FilterDataRequest `json:"filterData"`
}

// UpdateAnnouncementRequest represents a partial announcement update
type UpdateAnnouncementRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Audience    string             `json:"audience" binding:"omitempty,audience"`
	FilterData  *FilterDataRequest `json:"filterData"`
}
