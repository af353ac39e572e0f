package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// redirectActions are the processor redirect targets the page accepts.
var redirectActions = map[string]struct{}{
	"return":  {},
	"refresh": {},
	"success": {},
}

const redirectPage = `<!DOCTYPE html>
<html>
<head>
	<title>Redirecting...</title>
	<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
	<h2>Opening app...</h2>
	<p>If the app does not open automatically, use the link below.</p>
	<a href="%[1]s">Return to app</a>
	<script>
		setTimeout(function() { window.location.href = %[2]q; }, 500);
	</script>
</body>
</html>`

// NewRedirectHandler returns an HTTP handler serving the deep-link bounce
// page the processor redirects the payer's browser to after onboarding or
// checkout.
// @Summary Processor redirect page
// @Description Serves an HTML page that forwards the browser to the app deep link given in redirect_uri.
// @Tags account
// @Produce html
// @Param action path string true "Redirect action" Enums(return, refresh, success)
// @Param redirect_uri query string false "App deep link to forward to"
// @Success 200 {string} string "Redirect page"
// @Failure 400 {string} string "Invalid redirect action"
// @Router /processor/{action} [get]
func NewRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action := chi.URLParam(r, "action")
		if _, ok := redirectActions[action]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "Invalid redirect action")
			return
		}

		deepLink := r.URL.Query().Get("redirect_uri")
		if deepLink == "" {
			deepLink = defaultAppScheme + "processor/" + action
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, redirectPage, html.EscapeString(deepLink), deepLink)
	}
}
