package models

type ReviewRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

type ReviewResponse struct {
	OK       bool   `json:"ok"`
	ATSScore int    `json:"atsScore"`
	AIReview string `json:"aiReview"`
}
