package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterMemberRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamName string `json:"team_name,omitempty"`
}

type MemberResponse struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamName string `json:"team_name,omitempty"`
}

type RegisterMemberResponse struct {
	Member MemberResponse `json:"member"`
}

type MemberPageResponse struct {
	Members    []MemberResponse `json:"members"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
}

type SearchMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type MemberDtoResponse struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	TeamName string `json:"team_name"`
}

type MemberDtoListResponse struct {
	Members []MemberDtoResponse `json:"members"`
}

type BulkAgePlusRequest struct {
	Age int `json:"age"`
}

type BulkAgePlusResponse struct {
	Updated int64 `json:"updated"`
}

type TeamMemberRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

type TeamRequest struct {
	TeamName string              `json:"team_name"`
	Members  []TeamMemberRequest `json:"members"`
}

type TeamResponse struct {
	TeamName string           `json:"team_name"`
	Members  []MemberResponse `json:"members"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type GetTeamResponse struct {
	Team TeamResponse `json:"team"`
}
