package website

import (
	"fmt"
	"html"

	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
)

// GET /
//
// A bare-bones landing page for logged-in editors. The real editing
// UI is a separate frontend; this just proves you're logged in and
// shows the freshest items.
func Dashboard(c *RequestContext) ResponseData {
	items, err := bankdata.FetchItems(c, c.Conn, bankdata.ItemsQuery{Limit: 20})
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(&res, "<!DOCTYPE html>\n<html>\n<head><title>Mathbank</title></head>\n<body>\n")
	fmt.Fprintf(&res, "<h1>Mathbank</h1>\n<p>Logged in as %s.</p>\n", html.EscapeString(c.CurrentUser.Username))
	fmt.Fprintf(&res, "<h2>Latest items</h2>\n<ul>\n")
	for _, item := range items {
		fmt.Fprintf(&res, "<li>%s (used %d times)</li>\n", html.EscapeString(item.Ref), item.UsageCount)
	}
	fmt.Fprintf(&res, "</ul>\n</body>\n</html>\n")
	return res
}
