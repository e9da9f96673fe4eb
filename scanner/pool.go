package scanner

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Batch drivers create one scanner per compilation unit. To avoid
// re-allocating them we keep scanners in a pool.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &Scanner{}
			return sc, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// NewPooled returns a scanner over src, drawn from a global pool.
// Callers hand it back with Release when done with the token stream.
func NewPooled(src []byte) *Scanner {
	o, _ := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	sc := o.(*Scanner)
	sc.Init(src)
	sc.pooled = true
	return sc
}

// Release clears the scanner and puts it back into the pool. Calling
// Release on a scanner not drawn from the pool is a no-op.
func (sc *Scanner) Release() {
	if !sc.pooled {
		return
	}
	sc.Init(nil)
	sc.pooled = false
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}
