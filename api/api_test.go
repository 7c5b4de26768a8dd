package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeit-cli/codeit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func newTestClient(handler http.Handler, token string) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	viper.Set(key.APIBaseURL, server.URL)

	var provider TokenProvider
	if token != "" {
		provider = func() (string, bool) { return token, true }
	}
	return NewClient(provider), server
}

func respond(w http.ResponseWriter, status int, env any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestClient(t *testing.T) {
	Convey("Given a marketplace backend", t, func() {
		Convey("Login should decode the session user", func(c C) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.Method, ShouldEqual, http.MethodPost)
				c.So(r.URL.Path, ShouldEqual, "/user/login")

				var body map[string]string
				c.So(json.NewDecoder(r.Body).Decode(&body), ShouldBeNil)
				c.So(body["email"], ShouldEqual, "dev@example.com")

				respond(w, http.StatusOK, map[string]any{
					"success": true,
					"data": map[string]any{
						"_id":      "u1",
						"username": "dev",
						"email":    "dev@example.com",
						"token":    "session-token",
					},
				})
			})

			client, server := newTestClient(handler, "")
			defer server.Close()

			user, err := client.Login(context.Background(), "dev@example.com", "hunter2")
			So(err, ShouldBeNil)
			So(user.Username, ShouldEqual, "dev")
			So(user.Token, ShouldEqual, "session-token")
		})

		Convey("Authenticated calls should carry the bearer token", func(c C) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.Header.Get("Authorization"), ShouldEqual, "Bearer session-token")
				respond(w, http.StatusOK, map[string]any{
					"success": true,
					"data":    map[string]any{"_id": "u1", "username": "dev"},
				})
			})

			client, server := newTestClient(handler, "session-token")
			defer server.Close()

			user, err := client.Me(context.Background())
			So(err, ShouldBeNil)
			So(user.ID, ShouldEqual, "u1")
		})

		Convey("Catalog pages should pass pagination parameters", func(c C) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Path, ShouldEqual, "/course/getAll")
				c.So(r.URL.Query().Get("page"), ShouldEqual, "2")
				c.So(r.URL.Query().Get("limit"), ShouldEqual, "10")

				respond(w, http.StatusOK, map[string]any{
					"success": true,
					"data": []map[string]any{
						{"_id": "c1", "title": "Go from scratch", "price": 499},
					},
				})
			})

			client, server := newTestClient(handler, "")
			defer server.Close()

			courses, err := client.Courses(context.Background(), 2, 10)
			So(err, ShouldBeNil)
			So(len(courses), ShouldEqual, 1)
			So(courses[0].Title, ShouldEqual, "Go from scratch")
		})

		Convey("Category lookups should normalize display names", func(c C) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("category"), ShouldEqual, "personal-development")
				respond(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
			})

			client, server := newTestClient(handler, "")
			defer server.Close()

			_, err := client.CoursesByCategory(context.Background(), "Personal Development")
			So(err, ShouldBeNil)
		})

		Convey("Course content should decode the curriculum tree", func(c C) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("courseId"), ShouldEqual, "c1")
				respond(w, http.StatusOK, map[string]any{
					"success": true,
					"data": []map[string]any{
						{
							"_id": "f1", "title": "Section 1", "type": "folder",
							"subTracks": []map[string]any{
								{"_id": "v1", "title": "Intro", "type": "video", "videoUrl": "https://cdn.example.com/1.mp4"},
							},
						},
					},
				})
			})

			client, server := newTestClient(handler, "session-token")
			defer server.Close()

			tracks, err := client.CourseContent(context.Background(), "c1")
			So(err, ShouldBeNil)
			So(len(tracks), ShouldEqual, 1)
			So(len(tracks[0].Videos()), ShouldEqual, 1)
		})

		Convey("Backend failures should surface the message", func() {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				respond(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "invalid token",
				})
			})

			client, server := newTestClient(handler, "stale")
			defer server.Close()

			_, err := client.Me(context.Background())
			So(err, ShouldNotBeNil)

			var apiErr *Error
			So(err, ShouldHaveSameTypeAs, apiErr)
			apiErr = err.(*Error)
			So(apiErr.IsUnauthorized(), ShouldBeTrue)
			So(apiErr.Error(), ShouldContainSubstring, "invalid token")
		})

		Convey("Envelope with success=false on 200 should still fail", func() {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				respond(w, http.StatusOK, map[string]any{
					"success": false,
					"message": "course not found",
				})
			})

			client, server := newTestClient(handler, "")
			defer server.Close()

			_, err := client.Course(context.Background(), "missing")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "course not found")
		})
	})
}
