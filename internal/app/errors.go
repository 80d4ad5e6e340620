package app

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrPaperNotFound = errors.New("paper not found")
	ErrQuestionEmpty = errors.New("question is empty")
)
