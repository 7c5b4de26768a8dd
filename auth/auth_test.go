package auth

import (
	"testing"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Session token lifecycle", t, func() {
		Convey("Without a token the session is absent", func() {
			_ = DeleteToken()
			So(LoggedIn(), ShouldBeFalse)

			_, ok := Provider()()
			So(ok, ShouldBeFalse)
		})

		Convey("After SetToken the provider yields it", func() {
			So(SetToken("session-token"), ShouldBeNil)

			token, ok := Provider()()
			So(ok, ShouldBeTrue)
			So(token, ShouldEqual, "session-token")
			So(LoggedIn(), ShouldBeTrue)

			So(DeleteToken(), ShouldBeNil)
			So(LoggedIn(), ShouldBeFalse)
		})
	})
}

func TestProfile(t *testing.T) {
	Convey("Profile cache lifecycle", t, func() {
		Convey("Saving strips the token and round trips", func() {
			user := &api.User{
				ID:       "u1",
				Username: "dev",
				Email:    "dev@example.com",
				Token:    "secret",
			}
			So(SaveProfile(user), ShouldBeNil)

			cached := CachedProfile()
			So(cached.IsPresent(), ShouldBeTrue)
			So(cached.MustGet().Username, ShouldEqual, "dev")
			So(cached.MustGet().Token, ShouldBeEmpty)
		})

		Convey("Clearing drops the profile", func() {
			So(ClearProfile(), ShouldBeNil)
			So(CachedProfile().IsPresent(), ShouldBeFalse)
		})
	})
}
