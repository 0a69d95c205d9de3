package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSiteHandler(t *testing.T) {
	Convey("Given a site handler", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()

		Convey("When registering the site handler", func() {
			Register(ctx, mux)

			Convey("Then GET / should redirect to the landing page", func() {
				w := serve(mux, http.MethodGet, "/")
				So(w.Code, ShouldEqual, http.StatusTemporaryRedirect)
				So(w.Header().Get("Location"), ShouldEqual, "/static/index.html")
			})

			Convey("And the landing page should be served directly", func() {
				w := serve(mux, http.MethodGet, "/static/index.html")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Mergington High School")
			})

			Convey("And the static directory should serve the index", func() {
				w := serve(mux, http.MethodGet, "/static/")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "activities-list")
			})

			Convey("And scripts and styles should be served", func() {
				js := serve(mux, http.MethodGet, "/static/app.js")
				So(js.Code, ShouldEqual, http.StatusOK)
				So(js.Body.String(), ShouldContainSubstring, "/activities")

				css := serve(mux, http.MethodGet, "/static/styles.css")
				So(css.Code, ShouldEqual, http.StatusOK)
				So(css.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
			})

			Convey("And missing assets should be 404", func() {
				w := serve(mux, http.MethodGet, "/static/missing.png")
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})

			Convey("And other root paths should not be handled", func() {
				w := serve(mux, http.MethodGet, "/some-asset")
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When registering with a custom landing page", func() {
			Register(ctx, mux, WithLanding("/static/app.js"))

			Convey("Then GET / should redirect there", func() {
				w := serve(mux, http.MethodGet, "/")
				So(w.Code, ShouldEqual, http.StatusTemporaryRedirect)
				So(w.Header().Get("Location"), ShouldEqual, "/static/app.js")
			})
		})
	})
}

func TestSiteHandlerWithNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		ctx := context.Background()

		Convey("When registering the site handler", func() {
			Convey("Then it should panic", func() {
				So(func() {
					Register(ctx, nil)
				}, ShouldPanic)
			})
		})
	})
}
