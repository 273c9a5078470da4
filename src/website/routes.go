package website

import (
	"net/http"
	"regexp"

	"github.com/Tnecniv1/mathbank-sub001/src/logging"
	"github.com/Tnecniv1/mathbank-sub001/src/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewWebsiteRoutes(conn *pgxpool.Pool, store storage.Client) http.Handler {
	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			func(h Handler) Handler {
				return func(c *RequestContext) ResponseData {
					c.Conn = conn
					c.Store = store
					logger := logging.With().Str("method", c.Req.Method).Str("path", c.Req.URL.Path).Logger()
					c.Logger = &logger
					return h(c)
				}
			},
			panicCatcherMiddleware,
			trackRequestDuration,
			logContextErrorsMiddleware,
			loadCommonData,
		},
	}

	pages := routes.WithMiddleware(needsAuth)
	api := routes.WithMiddleware(corsMiddleware, needsAuthJson)

	routes.GET(regexp.MustCompile(`^/login$`), LoginPage)
	routes.POST(regexp.MustCompile(`^/login$`), Login)
	routes.POST(regexp.MustCompile(`^/logout$`), Logout)

	pages.GET(regexp.MustCompile(`^/$`), Dashboard)

	api.GET(regexp.MustCompile(`^/export$`), Export)
	api.POST(regexp.MustCompile(`^/publish$`), PublishCompilation)
	api.POST(regexp.MustCompile(`^/save$`), SaveCompilation)
	api.GET(regexp.MustCompile(`^/pdfs$`), ListPDFs)
	api.POST(regexp.MustCompile(`^/items$`), CreateItem)
	api.POST(regexp.MustCompile(`^/publications$`), CreatePublication)
	api.POST(regexp.MustCompile(`^/publications/(?P<ref>[^/]+)/upload$`), UploadPublicationPDF)
	api.POST(regexp.MustCompile(`^/publications/(?P<ref>[^/]+)/publish$`), PublishPublication)

	routes.AnyMethod(regexp.MustCompile(`^`), FourOhFour)

	return router
}
