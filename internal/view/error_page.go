package view

import (
	"net/http"
	"strconv"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

var errorMessages = map[int]string{
	http.StatusBadGateway:         "We couldn't load this page from the store. Please try again shortly.",
	http.StatusServiceUnavailable: "The store is temporarily unavailable. Please try again shortly.",
}

// ErrorPage renders a generic error document for status. It never shows
// internal details; requestID, when set, lets support correlate logs.
func ErrorPage(status int, requestID string) g.Node {
	title := strconv.Itoa(status) + " " + http.StatusText(status)

	message, ok := errorMessages[status]
	if !ok {
		message = "Something went wrong on our end."
	}

	body := []g.Node{
		h.H1(g.Text(title)),
		h.P(g.Text(message)),
	}
	if requestID != "" {
		body = append(body, h.P(h.Class("request-id"), g.Text("Request ID: "+requestID)))
	}

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(title)),
			),
			h.Body(body...),
		),
	)
}
