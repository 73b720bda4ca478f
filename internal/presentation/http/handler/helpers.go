package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alhuzaifa/tailor-api/internal/calculator"
	"github.com/alhuzaifa/tailor-api/pkg/apperror"
)

// parseIDParam reads a UUID path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}

// amount accepts a money field typed either as a JSON number or as the
// raw string an input box produces. Unparseable strings count as zero.
type amount float64

func (a *amount) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*a = amount(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = amount(calculator.ParseAmount(s))
	return nil
}
