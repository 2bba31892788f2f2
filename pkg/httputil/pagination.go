package httputil

import (
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"
)

// Page describes the requested slice of a list endpoint.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PaginatedResponse is the envelope returned by list endpoints.
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// ParsePage extracts the page number from the query string. Page numbers
// start at 1; anything unparsable falls back to the first page.
func ParsePage(ctx *fasthttp.RequestCtx, size int) Page {
	number := 1
	if raw := string(ctx.QueryArgs().Peek("page")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			number = parsed
		}
	}
	return Page{Number: number, Size: size}
}

// NewPaginatedResponse builds the list envelope with next/previous links
// relative to the request path. Links carry the request's query string
// with only the page number replaced, so filters survive page hops.
func NewPaginatedResponse(ctx *fasthttp.RequestCtx, page Page, count int64, results interface{}) PaginatedResponse {
	resp := PaginatedResponse{
		Count:   count,
		Results: results,
	}

	if int64(page.Offset()+page.Size) < count {
		next := pageLink(ctx, page.Number+1)
		resp.Next = &next
	}
	if page.Number > 1 {
		previous := pageLink(ctx, page.Number-1)
		resp.Previous = &previous
	}

	return resp
}

func pageLink(ctx *fasthttp.RequestCtx, number int) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	ctx.QueryArgs().CopyTo(args)
	args.Set("page", strconv.Itoa(number))

	return fmt.Sprintf("%s?%s", ctx.Path(), args.String())
}
