// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/spekke/LayoutKit/f32"
)

type measureCache struct {
	m          map[measureKey]*measureElem
	head, tail *measureElem
}

type measureElem struct {
	next, prev *measureElem
	key        measureKey
	size       f32.Size
}

type measureKey struct {
	str      string
	font     Font
	maxWidth float32
}

const maxCacheSize = 1000

func (c *measureCache) Get(k measureKey) (f32.Size, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.size, true
	}
	return f32.Size{}, false
}

func (c *measureCache) Put(k measureKey, sz f32.Size) {
	if c.m == nil {
		c.m = make(map[measureKey]*measureElem)
		c.head = new(measureElem)
		c.tail = new(measureElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		e.size = sz
		c.remove(e)
		c.insert(e)
		return
	}
	val := &measureElem{key: k, size: sz}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxCacheSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *measureCache) remove(e *measureElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *measureCache) insert(e *measureElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
