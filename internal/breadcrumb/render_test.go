// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crumb struct {
	label any
	link  string
}

// stateAt returns a State for a GET of target holding the given crumbs.
func stateAt(target string, crumbs ...crumb) *State {
	s := NewState(httptest.NewRequest("GET", target, nil), nil)
	for _, c := range crumbs {
		s.Append(c.label, c.link)
	}
	return s
}

func TestRenderLinks(t *testing.T) {
	tests := []struct {
		name   string
		target string
		crumbs []crumb
		args   []any
		want   template.HTML
	}{
		{
			name:   "empty trail",
			target: "/",
			want:   "",
		},
		{
			name:   "default separator",
			target: "/posts/1",
			crumbs: []crumb{{"Home", "/"}, {"Posts", "/posts"}, {"First", ""}},
			want:   `<a href="/">Home</a> › <a href="/posts">Posts</a> › First`,
		},
		{
			name:   "current page link renders as text",
			target: "/posts",
			crumbs: []crumb{{"Home", "/"}, {"Posts", "/posts"}},
			want:   `<a href="/">Home</a> › Posts`,
		},
		{
			name:   "separator shorthand",
			target: "/profile",
			crumbs: []crumb{{"Home", "/"}, {"Profile", ""}},
			args:   []any{"::"},
			want:   `<a href="/">Home</a> :: Profile`,
		},
		{
			name:   "labels are escaped",
			target: "/",
			crumbs: []crumb{{"<b>Tom & Jerry</b>", "/t?a=1&b=2"}, {"<i>x</i>", ""}},
			want:   `<a href="/t?a=1&amp;b=2">&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;</a> › &lt;i&gt;x&lt;/i&gt;`,
		},
		{
			name:   "separator markup is sanitized",
			target: "/",
			crumbs: []crumb{{"A", "/a"}, {"B", "/b"}},
			args:   []any{"<b>|</b><script>alert(1)</script>"},
			want:   `<a href="/a">A</a> <b>|</b> <a href="/b">B</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(stateAt(tt.target, tt.crumbs...), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderList(t *testing.T) {
	s := stateAt("/posts/1", crumb{"Home", "/"}, crumb{"Post", ""})

	got, err := Render(s, "type", "list")
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<ul class=''><li><a href="/">Home</a></li><li>Post</li></ul>`), got)

	got, err = Render(s, map[string]any{"type": "list", "class": "crumbs", "li_class": "crumb"})
	require.NoError(t, err)
	assert.Equal(t,
		template.HTML(`<ul class='crumbs'><li class='crumb'><a href="/">Home</a></li><li class='crumb'>Post</li></ul>`),
		got)
}

func TestRenderEmptyWrappers(t *testing.T) {
	s := stateAt("/")

	got, err := Render(s, Options{Type: StyleList})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("<ul class=''></ul>"), got)

	got, err = Render(s, Options{Type: StyleBootstrap})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("<ul class='breadcrumb'></ul>"), got)
}

func TestRenderBootstrap(t *testing.T) {
	s := stateAt("/profile", crumb{"Home", "/"}, crumb{"Profile", ""})

	got, err := Render(s, Options{Type: StyleBootstrap})
	require.NoError(t, err)
	assert.Equal(t,
		template.HTML(`<ul class='breadcrumb'><li><a href="/">Home</a><span class='divider'>/</span></li><li class='active'>Profile</li></ul>`),
		got)
}

func TestRenderBootstrapLastAlwaysActive(t *testing.T) {
	// The last crumb links elsewhere yet still renders as the active item.
	s := stateAt("/somewhere", crumb{"Home", "/"}, crumb{"Posts", "/posts"})

	got, err := Render(s, "type", "bootstrap")
	require.NoError(t, err)

	html := string(got)
	assert.True(t, strings.HasSuffix(html, `<li class='active'><a href="/posts">Posts</a></li></ul>`), html)
	assert.Equal(t, 1, strings.Count(html, "<span class='divider'>/</span>"))
}

func TestRenderBootstrapCurrentMiddleItem(t *testing.T) {
	s := stateAt("/posts", crumb{"Home", "/"}, crumb{"Posts", "/posts"}, crumb{"Archive", "/archive"})

	got, err := Render(s, "type", "bootstrap")
	require.NoError(t, err)
	assert.Equal(t,
		template.HTML(`<ul class='breadcrumb'>`+
			`<li><a href="/">Home</a><span class='divider'>/</span></li>`+
			`<li class='active'>Posts</li>`+
			`<li class='active'><a href="/archive">Archive</a></li></ul>`),
		got)
}

func TestRenderStringerLabel(t *testing.T) {
	s := stateAt("/posts/7", crumb{"Posts", "/posts"}, crumb{testRecord{title: "Hello <World>"}, ""})

	got, err := Render(s)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<a href="/posts">Posts</a> › Hello &lt;World&gt;`), got)
}

func TestRenderNilState(t *testing.T) {
	got, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRendererDefaults(t *testing.T) {
	r := NewRenderer(Options{Type: StyleList, ListClass: "nav"})
	assert.Equal(t, DefaultSeparator, r.Defaults().Separator)

	s := stateAt("/", crumb{"Home", ""})

	got, err := r.Render(s)
	require.NoError(t, err)
	assert.Equal(t, template.HTML(`<ul class='nav'><li>Home</li></ul>`), got)

	got, err = r.Render(s, "type", "links")
	require.NoError(t, err)
	assert.Equal(t, template.HTML("Home"), got)
}

func TestRenderInvalidOptions(t *testing.T) {
	_, err := Render(stateAt("/"), "type", "pills")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestFuncMapInTemplate(t *testing.T) {
	r := NewRenderer(Options{})
	tmpl := template.Must(template.New("page").Funcs(r.FuncMap()).Parse(
		`<nav>{{ breadcrumbs .Crumbs }}</nav>` +
			`<nav>{{ breadcrumbs .Crumbs (crumbOpts "type" "list" "class" "trail") }}</nav>`))

	s := stateAt("/posts", crumb{"Home", "/"}, crumb{"Posts & Pages", "/posts"})

	var b strings.Builder
	require.NoError(t, tmpl.Execute(&b, map[string]any{"Crumbs": s}))
	assert.Equal(t,
		`<nav><a href="/">Home</a> › Posts &amp; Pages</nav>`+
			`<nav><ul class='trail'><li><a href="/">Home</a></li><li>Posts &amp; Pages</li></ul></nav>`,
		b.String())
}
