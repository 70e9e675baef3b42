package client

import "sync"

// GlobalKey is the cache slot for a password that applies to every
// recording of the session.
const GlobalKey = "*"

// SessionPasswordCache keeps file passwords in memory for the lifetime of
// one client session. It is never persisted; Clear must be called when the
// session ends.
type SessionPasswordCache struct {
	mu        sync.Mutex
	passwords map[string]string
}

func NewSessionPasswordCache() *SessionPasswordCache {
	return &SessionPasswordCache{passwords: make(map[string]string)}
}

// Get returns the password cached for key.
func (c *SessionPasswordCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	password, ok := c.passwords[key]
	return password, ok
}

// Set caches password for key. Empty passwords are ignored.
func (c *SessionPasswordCache) Set(key, password string) {
	if password == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.passwords[key] = password
}

func (c *SessionPasswordCache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.passwords, key)
}

// Clear drops every cached password.
func (c *SessionPasswordCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.passwords)
}

func (c *SessionPasswordCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.passwords)
}
