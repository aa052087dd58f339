package apimodels

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Message string      `json:"message,omitempty"` // error message
	Data    interface{} `json:"data,omitempty"`    // payload
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` // total rows matching the filter, for lists
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// Pagination is optional: without page and limit a list is returned whole.
type Pagination struct {
	Limit int `json:"limit" query:"limit"` // rows per page, at most 100
	Page  int `json:"page" query:"page"`   // page number, from 1
}

func (r Pagination) Paged() bool {
	return r.Limit > 0 || r.Page > 0
}

// Offset returns the sql offset and limit of the requested page.
func (r Pagination) Offset() (offset, limit int) {
	page, limit := r.GetPage()
	return (page - 1) * limit, limit
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
