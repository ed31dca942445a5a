package errs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validation marks a rejected request payload. Its message is sent to the
// caller verbatim with a 400 status.
type Validation string

func (e Validation) Error() string { return string(e) }

var (
	ErrProjectNotFound = errors.New("Project not found")
	ErrExpenseNotFound = errors.New("Expense not found")
)

var statusMap = map[error]int{
	ErrProjectNotFound: http.StatusNotFound,
	ErrExpenseNotFound: http.StatusNotFound,
}

// Status maps an error to the HTTP status it should be reported with.
// Anything outside the known taxonomy is a persistence or internal failure.
func Status(err error) int {
	var v Validation
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}
	for known, code := range statusMap {
		if errors.Is(err, known) {
			return code
		}
	}
	return http.StatusInternalServerError
}

// Write is the single translation point between operation errors and HTTP
// responses. Every failure body has the shape {"error": "..."}.
func Write(c *gin.Context, err error) {
	status := Status(err)

	msg := err.Error()
	for known := range statusMap {
		if errors.Is(err, known) {
			msg = known.Error()
			break
		}
	}

	if status == http.StatusInternalServerError {
		// recorded on the gin context so the request logger picks it up
		_ = c.Error(err)
		if msg == "" {
			msg = "Internal server error"
		}
	}

	c.JSON(status, gin.H{"error": msg})
}
