package dto

import "github.com/CodesofAkash/twitch-clone/internal/domain/tag/entities"

// TagWithCount is a tag with the number of streams currently linked to it
type TagWithCount struct {
	entities.Tag
	StreamCount int64 `json:"streamCount"`
}

// ReplaceTagsRequest is the body for the full-replace tag update
type ReplaceTagsRequest struct {
	Tags []string `json:"tags"`
}
