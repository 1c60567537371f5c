package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	defer func(v, tag string) { Version, GitTag = v, tag }(Version, GitTag)

	Version, GitTag = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	GitTag = "v1.2.0"
	require.Equal(t, "v1.2.0", AppVersion())

	Version = "1.2.0-rc1"
	require.Equal(t, "1.2.0-rc1", AppVersion())
}
