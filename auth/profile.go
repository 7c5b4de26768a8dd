package auth

import (
	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/filesystem"
	"github.com/codeit-cli/codeit/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// profileCacher persists the logged-in account so that whoami and purchase
// checks do not need a round trip on every invocation.
var profileCacher = gache.New[*api.User](
	&gache.Options{
		Path:       where.Profile(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// CachedProfile returns the locally stored account, if any.
func CachedProfile() mo.Option[*api.User] {
	data, expired, err := profileCacher.Get()
	if err != nil || expired || data == nil {
		return mo.None[*api.User]()
	}
	return mo.Some(data)
}

// SaveProfile stores the account locally after a successful login or refresh.
func SaveProfile(user *api.User) error {
	// The token travels through the keyring, never through the disk cache.
	clone := *user
	clone.Token = ""
	return profileCacher.Set(&clone)
}

// ClearProfile drops the locally stored account on logout.
func ClearProfile() error {
	return profileCacher.Set(nil)
}
