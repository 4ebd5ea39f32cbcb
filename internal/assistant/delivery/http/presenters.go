package http

type queryReq struct {
	Query string `json:"query" binding:"required"`
}

type queryResp struct {
	Answer string `json:"answer"`
}
