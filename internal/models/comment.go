package models

import (
	"encoding/json"
	"strings"
)

// Comment is a review left on a CV. The API has returned the author both as
// a flat userId and as a nested user object across deployments; both shapes
// decode into the same flat struct here so the rest of the client sees one
// stable form.
type Comment struct {
	ID         string
	CVID       string
	AuthorID   string
	AuthorName string
	Text       string
}

// CommentRequest is the body for adding a comment to a CV.
type CommentRequest struct {
	CVID    string `json:"cvId"`
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// CommentEditRequest is the body for editing an existing comment.
type CommentEditRequest struct {
	Comment string `json:"comment"`
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string `json:"_id"`
		AltID    string `json:"id"`
		CVID     string `json:"cvId"`
		UserID   string `json:"userId"`
		UserName string `json:"userName"`
		User     *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
		Text string `json:"text"`
		Body string `json:"comment"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	if c.ID == "" {
		c.ID = raw.AltID
	}
	c.CVID = raw.CVID
	c.AuthorID = raw.UserID
	c.AuthorName = raw.UserName
	if raw.User != nil {
		if c.AuthorID == "" {
			c.AuthorID = raw.User.ID
		}
		if c.AuthorName == "" {
			c.AuthorName = raw.User.Name
		}
	}
	c.Text = raw.Text
	if c.Text == "" {
		c.Text = raw.Body
	}
	return nil
}

// Validate checks a new comment before submission.
func (r CommentRequest) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(r.Comment) == "" {
		errs = append(errs, "comment: required")
	}
	if r.CVID == "" {
		errs = append(errs, "cvId: required")
	}
	return errs.ErrOrNil()
}

// EditableBy reports whether the comment's action buttons should be offered
// to the given user: the comment's author or the owner of the CV it was left
// on. This is a UI affordance only; the server enforces the rule
// authoritatively.
func (c Comment) EditableBy(userID, cvOwnerID string) bool {
	if userID == "" {
		return false
	}
	return c.AuthorID == userID || cvOwnerID == userID
}
