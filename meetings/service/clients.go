package service

import (
	"github.com/openconf/meetpool/internal/bbb"
	isync "github.com/openconf/meetpool/internal/sync"
	"github.com/openconf/meetpool/meetings"
)

type pooledClient struct {
	url    string
	secret string
	client bbb.Client
}

// ClientPool caches one backend client per server. Entries are rebuilt when
// the server's url or secret changes through an admin update.
type ClientPool struct {
	factory func(url, secret string) bbb.Client
	pool    *isync.Map[int64, *pooledClient]
}

func NewClientPool(factory func(url, secret string) bbb.Client) *ClientPool {
	return &ClientPool{
		factory: factory,
		pool:    isync.NewMap[int64, *pooledClient](),
	}
}

func (cp *ClientPool) get(srv *meetings.Server) bbb.Client {
	if pc, ok := cp.pool.Load(srv.ID); ok &&
		pc.url == srv.URL && pc.secret == srv.Secret {
		return pc.client
	}

	pc := &pooledClient{
		url:    srv.URL,
		secret: srv.Secret,
		client: cp.factory(srv.URL, srv.Secret),
	}
	cp.pool.Store(srv.ID, pc)
	return pc.client
}
