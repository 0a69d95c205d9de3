package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/okian/mergington/internal/adapters/repository"
	app "github.com/okian/mergington/internal/app"
	"github.com/okian/mergington/internal/config"
	"github.com/okian/mergington/pkg/logger"
	"github.com/okian/mergington/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestService(store repository.Store) *app.Service {
	return app.New(
		app.WithStore(store),
		app.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
	)
}

func TestNewStore(t *testing.T) {
	convey.Convey("Given the server configuration", t, func() {
		ctx := context.Background()
		cfg := config.New()

		convey.Convey("When no seed file is configured", func() {
			store, err := newStore(ctx, cfg)

			convey.Convey("Then the built-in catalog should be served", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store.Count(ctx), convey.ShouldEqual, len(repository.DefaultSeed()))
			})
		})

		convey.Convey("When a seed file is configured", func() {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			seed := "activities:\n" +
				"  - name: Robotics Club\n" +
				"    description: Build and program robots\n" +
				"    schedule: Mondays, 3:30 PM - 5:00 PM\n" +
				"    max_participants: 10\n" +
				"    participants: [ada@mergington.edu]\n"
			convey.So(os.WriteFile(path, []byte(seed), 0o600), convey.ShouldBeNil)
			cfg.SeedFile = path

			store, err := newStore(ctx, cfg)

			convey.Convey("Then only the file's activities should be served", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store.Count(ctx), convey.ShouldEqual, 1)
				a, err := store.Get(ctx, "Robotics Club")
				convey.So(err, convey.ShouldBeNil)
				convey.So(a.Participants, convey.ShouldResemble, []string{"ada@mergington.edu"})
			})
		})

		convey.Convey("When the seed file is missing", func() {
			cfg.SeedFile = filepath.Join(t.TempDir(), "absent.yaml")
			_, err := newStore(ctx, cfg)

			convey.Convey("Then an error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the assembled HTTP handler", t, func() {
		ctx := context.Background()
		cfg := config.New()
		svc := newTestService(repository.NewMemoryStore())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		handler := newHandler(ctx, cfg, svc)

		serve := func(method, target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(method, target, http.NoBody))
			return w
		}

		convey.Convey("When requesting the root", func() {
			w := serve(http.MethodGet, "/")

			convey.Convey("Then it should redirect to the static landing page", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusTemporaryRedirect)
				convey.So(w.Header().Get("Location"), convey.ShouldEqual, "/static/index.html")
				convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When signing up through the full stack", func() {
			w := serve(http.MethodPost, "/activities/Chess%20Club/signup?email=ada@mergington.edu")

			convey.Convey("Then the roster should include the student", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				list := serve(http.MethodGet, "/activities")
				var body map[string]struct {
					Participants []string `json:"participants"`
				}
				convey.So(json.Unmarshal(list.Body.Bytes(), &body), convey.ShouldBeNil)
				convey.So(body["Chess Club"].Participants, convey.ShouldContain, "ada@mergington.edu")
			})
		})

		convey.Convey("When requesting the static assets and docs", func() {
			convey.Convey("Then each should be served", func() {
				convey.So(serve(http.MethodGet, "/static/index.html").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/api-docs").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve(http.MethodGet, "/healthz").Code, convey.ShouldEqual, http.StatusOK)
			})
		})

		convey.Convey("When a custom landing page is configured", func() {
			cfg.StaticRedirect = "/static/app.js"
			w := httptest.NewRecorder()
			newHandler(ctx, cfg, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			convey.Convey("Then the root should redirect there", func() {
				convey.So(w.Header().Get("Location"), convey.ShouldEqual, "/static/app.js")
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("Then the loop should stop when its context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()
			cancel()
			<-done
			convey.So(ctx.Err(), convey.ShouldNotBeNil)
		})
	})
}
