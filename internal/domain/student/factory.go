package student

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateStudentRequest) Student {
	now := time.Now().UTC()

	return Student{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Course:    req.Course,
		Batch:     req.Batch,
		Grade:     req.Grade,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply folds a partial update into an existing record.
func (s Student) Apply(req UpdateStudentRequest) Student {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Email != nil {
		s.Email = *req.Email
	}
	if req.Course != nil {
		s.Course = *req.Course
	}
	if req.Batch != nil {
		s.Batch = *req.Batch
	}
	if req.Grade != nil {
		s.Grade = *req.Grade
	}
	s.UpdatedAt = time.Now().UTC()

	return s
}
