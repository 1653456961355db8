package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/readinglist/internal/model"
	"github.com/snnyvrz/readinglist/internal/repository"
	"github.com/snnyvrz/readinglist/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	validation.RegisterBookRules()
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBookStatus)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books, newest first
// @Tags         books
// @Produce      json
// @Success      200  {array}   Book
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "BOOK_LIST_FAILED")
		return
	}

	c.JSON(http.StatusOK, toListBooksResponse(books))
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Add a book with title, author, genre, rating, status and notes
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Rating: req.Rating,
		Status: model.Status(req.Status),
		Notes:  req.Notes,
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		writeStoreError(c, err, "BOOK_CREATE_FAILED")
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// UpdateBookStatus godoc
// @Summary      Update a book's status
// @Description  Set the reading status of a book. No other field changes.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Book ID"
// @Param        payload  body      UpdateStatusRequest   true  "New status"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or status"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBookStatus(c *gin.Context) {
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.repo.UpdateStatus(c.Request.Context(), bookID, model.Status(req.Status))
	if err != nil {
		writeStoreError(c, err, "BOOK_UPDATE_FAILED")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its ID. Deleting a missing book succeeds.
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), bookID); err != nil {
		writeStoreError(c, err, "BOOK_DELETE_FAILED")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted"})
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"book id must be an integer",
		)
		return 0, false
	}
	return id, true
}
