package charon

import (
	"embed"
	"io/fs"
)

//go:embed topics
var topicsFS embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
