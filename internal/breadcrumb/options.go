// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package breadcrumb

import (
	"errors"
	"fmt"
	"strings"
)

// Option parsing errors.
var (
	ErrUnknownStyle  = errors.New("unknown breadcrumb style")
	ErrUnknownOption = errors.New("unknown breadcrumb option")
)

// Style selects the markup produced by the renderer.
type Style string

// Supported styles.
const (
	// StyleLinks joins crumbs with a separator and no wrapping element.
	StyleLinks Style = "links"
	// StyleList wraps crumbs in <li> elements inside a <ul>.
	StyleList Style = "list"
	// StyleBootstrap renders a Bootstrap ul.breadcrumb with dividers and an active item.
	StyleBootstrap Style = "bootstrap"
)

// DefaultSeparator is placed between crumbs in the links style.
const DefaultSeparator = "›"

// ParseStyle converts a style name to a Style.
func ParseStyle(name string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(name))); st {
	case StyleLinks, StyleList, StyleBootstrap:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Options controls rendering. Zero fields take the renderer's defaults;
// an empty separator passed through ParseOptions is kept as given.
type Options struct {
	// Separator is used by StyleLinks only.
	Separator string
	Type      Style
	// ListClass is the class of the enclosing <ul> for StyleList.
	ListClass string
	// ItemClass is the class of each <li> for StyleList.
	ItemClass string

	// emptySeparator marks a separator given as "" to ParseOptions. It joins
	// crumbs with spaces only instead of falling back to the default.
	emptySeparator bool
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
		Type:      StyleLinks,
	}
}

// withDefaults fills zero fields of o from d.
func (o Options) withDefaults(d Options) Options {
	if o.Separator == "" && !o.emptySeparator {
		o.Separator = d.Separator
	}
	if o.Type == "" {
		o.Type = d.Type
	}
	if o.ListClass == "" {
		o.ListClass = d.ListClass
	}
	if o.ItemClass == "" {
		o.ItemClass = d.ItemClass
	}
	return o
}

// ParseOptions builds Options from template arguments. Accepted forms:
//
//	()                              defaults
//	("::")                          separator shorthand
//	(Options) or (*Options)
//	(map[string]any) / (map[string]string)
//	("type", "list", "class", "nav") key/value pairs
//
// Keys are separator, type (or style), class (or list_class) and
// li_class (or item_class).
func ParseOptions(args ...any) (Options, error) {
	var o Options
	switch len(args) {
	case 0:
		return o, nil
	case 1:
		switch v := args[0].(type) {
		case nil:
			return o, nil
		case string:
			o.setSeparator(v)
			return o, nil
		case Options:
			return normalizeStyle(v)
		case *Options:
			if v == nil {
				return o, nil
			}
			return normalizeStyle(*v)
		case map[string]any:
			for k, val := range v {
				if err := o.set(k, val); err != nil {
					return Options{}, err
				}
			}
			return o, nil
		case map[string]string:
			for k, val := range v {
				if err := o.set(k, val); err != nil {
					return Options{}, err
				}
			}
			return o, nil
		default:
			return Options{}, fmt.Errorf("%w: unsupported argument of type %T", ErrUnknownOption, args[0])
		}
	}

	if len(args)%2 != 0 {
		return Options{}, fmt.Errorf("%w: odd number of key/value arguments", ErrUnknownOption)
	}
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return Options{}, fmt.Errorf("%w: key of type %T", ErrUnknownOption, args[i])
		}
		if err := o.set(key, args[i+1]); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

func (o *Options) set(key string, value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case Style:
		s = string(v)
	case fmt.Stringer:
		s = v.String()
	default:
		return fmt.Errorf("%w: %s has value of type %T", ErrUnknownOption, key, value)
	}

	switch strings.ToLower(key) {
	case "separator":
		o.setSeparator(s)
	case "type", "style":
		st, err := ParseStyle(s)
		if err != nil {
			return err
		}
		o.Type = st
	case "class", "list_class", "listclass":
		o.ListClass = s
	case "li_class", "item_class", "itemclass":
		o.ItemClass = s
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return nil
}

func (o *Options) setSeparator(sep string) {
	o.Separator = sep
	o.emptySeparator = sep == ""
}

func normalizeStyle(o Options) (Options, error) {
	if o.Type == "" {
		return o, nil
	}
	st, err := ParseStyle(string(o.Type))
	if err != nil {
		return Options{}, err
	}
	o.Type = st
	return o, nil
}
