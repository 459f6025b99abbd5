package game

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/pkg/errors"
)

// FetchLevel downloads a level file into dir and returns its local path. The
// source can be anything go-getter understands: a local path, an http(s) URL,
// or a forced getter such as "s3::" or "gcs::".
func FetchLevel(ctx context.Context, src, dir string) (string, error) {
	dst := filepath.Join(dir, levelFileName(src))
	util.LogIOInfo(fmt.Sprintf("[FetchLevel] %s -> %s", src, dst))
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		util.LogIOError(fmt.Sprintf("[FetchLevel] %s failed: %v", src, err))
		return "", errors.Wrapf(err, "fetching level %s", src)
	}
	return dst, nil
}

func levelFileName(src string) string {
	if i := strings.Index(src, "::"); i >= 0 {
		src = src[i+2:]
	}
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	name := path.Base(filepath.ToSlash(src))
	if name == "." || name == "/" || name == "" {
		return "level.nbt"
	}
	return name
}
