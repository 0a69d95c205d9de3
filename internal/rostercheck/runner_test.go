package rostercheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/mergington/internal/adapters/http/api"
	repository "github.com/okian/mergington/internal/adapters/repository"
	service "github.com/okian/mergington/internal/app"
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

// newTestServer runs the real API on a fresh default-seeded registry.
func newTestServer() *httptest.Server {
	svc := service.New(
		service.WithStore(repository.NewMemoryStore()),
		service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
	)
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return httptest.NewServer(api.RequestMiddleware(mux))
}

func TestRun(t *testing.T) {
	convey.Convey("Given a running activities server", t, func() {
		srv := newTestServer()
		defer srv.Close()
		ctx := context.Background()

		convey.Convey("When checking a single activity", func() {
			cfg := &Config{BaseURL: srv.URL, Activity: "Chess Club", Students: 8, Workers: 4, Timeout: 5 * time.Second}
			stats, err := Run(ctx, cfg)

			convey.Convey("Then every change should succeed and the roster be restored", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stats.Activities, convey.ShouldEqual, 1)
				convey.So(stats.Signups, convey.ShouldEqual, 8)
				convey.So(stats.Unregistered, convey.ShouldEqual, 8)
				convey.So(stats.DuplicatesSeen, convey.ShouldEqual, 1)
				convey.So(stats.SignupsFailed+stats.UnregFailed, convey.ShouldEqual, 0)

				activities, err := newHTTPClient(srv.URL, time.Second).Activities(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(activities["Chess Club"].Participants, convey.ShouldResemble,
					[]string{"michael@mergington.edu", "daniel@mergington.edu"})
			})
		})

		convey.Convey("When checking all activities with defaults", func() {
			stats, err := Run(ctx, &Config{BaseURL: srv.URL + "/"})

			convey.Convey("Then all nine activities should be exercised", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stats.Activities, convey.ShouldEqual, 9)
				convey.So(stats.Signups, convey.ShouldEqual, 9*DefaultStudents)
				convey.So(stats.Unregistered, convey.ShouldEqual, 9*DefaultStudents)
			})
		})

		convey.Convey("When the activity does not exist", func() {
			_, err := Run(ctx, &Config{BaseURL: srv.URL, Activity: "Underwater Basket Weaving"})

			convey.Convey("Then it should fail with ErrUnknownActivity", func() {
				convey.So(errors.Is(err, ErrUnknownActivity), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given an unhealthy server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		convey.Convey("Then the run should stop at the health check", func() {
			_, err := Run(context.Background(), &Config{BaseURL: srv.URL})
			convey.So(errors.Is(err, ErrUnexpectedStatus), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "health check")
		})
	})
}

func TestVerification(t *testing.T) {
	convey.Convey("Given rosters before and after a run", t, func() {
		before := map[string]Activity{
			"Chess Club": {Participants: []string{"a@mergington.edu"}},
			"Gym Class":  {Participants: []string{}},
		}

		convey.Convey("When a target roster changed size", func() {
			after := map[string]Activity{
				"Chess Club": {Participants: []string{"a@mergington.edu", "b@mergington.edu"}},
				"Gym Class":  {Participants: []string{}},
			}
			err := verifyCounts(before, after, []string{"Chess Club", "Gym Class"})

			convey.Convey("Then it should report a mismatch", func() {
				convey.So(errors.Is(err, ErrRosterMismatch), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "Chess Club")
			})
		})

		convey.Convey("When a signed-up student is missing", func() {
			err := verifyPresent(before, []job{{activity: "Gym Class", email: "b@mergington.edu"}})

			convey.Convey("Then it should report a mismatch", func() {
				convey.So(errors.Is(err, ErrRosterMismatch), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When selecting all targets", func() {
			targets, err := selectTargets(before, "")

			convey.Convey("Then names should be sorted", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(targets, convey.ShouldResemble, []string{"Chess Club", "Gym Class"})
			})
		})
	})
}

func TestGenerator(t *testing.T) {
	convey.Convey("Given generated jobs", t, func() {
		jobs := buildJobs([]string{"Art Studio", "Drama Club"}, 3)

		convey.Convey("Then each activity should get unique school addresses", func() {
			convey.So(len(jobs), convey.ShouldEqual, 6)
			seen := map[string]bool{}
			for _, j := range jobs {
				convey.So(strings.HasSuffix(j.email, "@"+EmailDomain), convey.ShouldBeTrue)
				convey.So(seen[j.email], convey.ShouldBeFalse)
				seen[j.email] = true
			}
		})
	})
}

func TestHTTPClient(t *testing.T) {
	convey.Convey("Given a client for a running server", t, func() {
		srv := newTestServer()
		defer srv.Close()
		ctx := context.Background()
		client := newHTTPClient(srv.URL, 5*time.Second)

		convey.Convey("When signing up for an activity with spaces in its name", func() {
			status, msg, err := client.Signup(ctx, "Programming Class", "grace+test@mergington.edu")

			convey.Convey("Then the message should echo the decoded email and name", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(status, convey.ShouldEqual, http.StatusOK)
				convey.So(msg, convey.ShouldEqual, "Signed up grace+test@mergington.edu for Programming Class")
			})

			convey.Convey("And signing up again should return the error detail", func() {
				status, detail, err := client.Signup(ctx, "Programming Class", "grace+test@mergington.edu")
				convey.So(err, convey.ShouldBeNil)
				convey.So(status, convey.ShouldEqual, http.StatusBadRequest)
				convey.So(detail, convey.ShouldEqual, "Student is already signed up for this activity")
			})
		})

		convey.Convey("When unregistering from an unknown activity", func() {
			status, detail, err := client.Unregister(ctx, "Quidditch", "harry@mergington.edu")

			convey.Convey("Then it should return 404 with the detail", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(status, convey.ShouldEqual, http.StatusNotFound)
				convey.So(detail, convey.ShouldEqual, "Activity not found")
			})
		})
	})
}
