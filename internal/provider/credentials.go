package provider

import "sync/atomic"

// CredentialPool rotates through a set of upstream API keys so no single key
// absorbs all request quota.
type CredentialPool struct {
	keys []string
	next atomic.Uint64
}

func NewCredentialPool(keys []string) *CredentialPool {
	return &CredentialPool{keys: keys}
}

// Next returns the next key in round-robin order, or the empty string when
// the pool holds no keys.
func (p *CredentialPool) Next() string {
	if len(p.keys) == 0 {
		return ""
	}
	n := p.next.Add(1) - 1
	return p.keys[n%uint64(len(p.keys))]
}

func (p *CredentialPool) Size() int {
	return len(p.keys)
}
