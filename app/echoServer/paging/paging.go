// Package paging parses the from/size query pair shared by the paginated
// listings.
package paging

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultFrom = 0
	defaultSize = 10
	maxSize     = 100
)

type Page struct {
	From int
	Size int
}

func Parse(c echo.Context) (Page, error) {
	p := Page{From: defaultFrom, Size: defaultSize}

	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, errors.New("from must be an integer")
		}
		p.From = v
	}
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, errors.New("size must be an integer")
		}
		p.Size = v
	}

	if p.From < 0 {
		return Page{}, errors.New("from must be >= 0")
	}
	if p.Size < 1 || p.Size > maxSize {
		return Page{}, errors.New("size must be between 1 and 100")
	}
	return p, nil
}
