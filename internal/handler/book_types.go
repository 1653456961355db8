package handler

import (
	"time"

	"github.com/snnyvrz/readinglist/internal/model"
)

type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Genre  string `json:"genre"`
	Rating int    `json:"rating"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,bookstatus" example:"Read"`
}

type Book struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Dune"`
	Author    string    `json:"author" example:"Frank Herbert"`
	Genre     string    `json:"genre" example:"Science Fiction"`
	Rating    int       `json:"rating" example:"5"`
	Status    string    `json:"status" example:"Want to Read"`
	Notes     string    `json:"notes" example:""`
	CreatedAt time.Time `json:"created_at" example:"2025-11-24T10:00:00Z"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

func toBookResponse(b model.Book) Book {
	return Book{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Rating:    b.Rating,
		Status:    b.Status.String(),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

func toListBooksResponse(books []model.Book) []Book {
	responses := make([]Book, 0, len(books))
	for _, b := range books {
		responses = append(responses, toBookResponse(b))
	}
	return responses
}
