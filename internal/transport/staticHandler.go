package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves front-end files from one directory. Paths are
// resolved through http.Dir, so requests cannot leave the root.
type StaticHandler struct {
	root  http.FileSystem
	index string
}

func NewStaticHandler(root, index string) *StaticHandler {
	return &StaticHandler{
		root:  http.Dir(root),
		index: index,
	}
}

func (h *StaticHandler) ServeIndex(c *gin.Context) {
	h.serve(c, "/"+h.index)
}

// ServeFile answers every request no route matched.
func (h *StaticHandler) ServeFile(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		notFound(c)
		return
	}
	h.serve(c, c.Request.URL.Path)
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	f, err := h.root.Open(name)
	if err != nil {
		notFound(c)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		notFound(c)
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
