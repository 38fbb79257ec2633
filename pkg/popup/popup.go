package popup

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Window describes a named secondary browser window.
type Window struct {
	Name       string
	DefaultURL string
	Width      int
	Height     int
	Left       int
	Top        int
	Resizable  bool
	Scrollbars bool
	Focus      bool
}

var (
	// Detail shows legal pages, contact and similar detail texts.
	Detail = Window{Name: "detailwin", Width: 482, Height: 600, Left: 100, Top: 100, Resizable: true, Scrollbars: true, Focus: true}

	// RingDetail shows the ring schema.
	RingDetail = Window{Name: "ringdetail", DefaultURL: "ring-detail", Width: 492, Height: 450, Left: 100, Top: 100, Focus: true}

	// News shows news and the news archive.
	News = Window{Name: "newswin", Width: 480, Height: 400, Left: 100, Top: 100, Resizable: true, Scrollbars: true, Focus: true}

	// InfoSystem shows the satellite map information system.
	InfoSystem = Window{Name: "infowin", DefaultURL: "/infosys", Width: 740, Height: 500, Left: 250, Top: 50}

	// Mail shows the outcome of an info mail request.
	Mail = Window{Name: "mailwin", Width: 480, Height: 235, Left: 100, Top: 100, Resizable: true, Scrollbars: true}
)

var windows = map[string]Window{
	Detail.Name:     Detail,
	RingDetail.Name: RingDetail,
	News.Name:       News,
	InfoSystem.Name: InfoSystem,
	Mail.Name:       Mail,
}

// Lookup returns the window registered under name.
func Lookup(name string) (Window, error) {
	w, ok := windows[name]
	if !ok {
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
	return w, nil
}

// Features renders the window.open feature string.
func (w Window) Features() string {
	var b strings.Builder
	b.WriteString("width=")
	b.WriteString(strconv.Itoa(w.Width))
	b.WriteString(",height=")
	b.WriteString(strconv.Itoa(w.Height))
	b.WriteString(",status=no,toolbar=no,menubar=no,resizable=")
	b.WriteString(yesNo(w.Resizable))
	b.WriteString(",scrollbars=")
	b.WriteString(yesNo(w.Scrollbars))
	b.WriteString(",left=")
	b.WriteString(strconv.Itoa(w.Left))
	b.WriteString(",top=")
	b.WriteString(strconv.Itoa(w.Top))
	return b.String()
}

// URL returns url, or the window's default location when url is empty.
func (w Window) URL(url string) string {
	if url == "" {
		return w.DefaultURL
	}
	return url
}

// Script renders the JavaScript statement opening the window at url.
// Windows with Focus are brought to the front after opening.
func (w Window) Script(url string) string {
	call := "window.open(" + jsString(w.URL(url)) + "," + jsString(w.Name) + "," + jsString(w.Features()) + ")"
	if !w.Focus {
		return call + ";"
	}
	return "var w=" + call + ";if(w){w.focus();}"
}

// OnClick renders a link handler that opens the window and cancels navigation.
func (w Window) OnClick(url string) string {
	return w.Script(url) + "return false;"
}

// Attrs returns link attributes opening url in the window. The target keeps
// the link working when scripts are disabled.
func (w Window) Attrs(url string) templ.Attributes {
	return templ.Attributes{
		"href":    w.URL(url),
		"target":  w.Name,
		"onclick": w.OnClick(url),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
