package memory

import "context"

type txKey struct{}

type memTx struct {
	undo []func()
}

func txFromContext(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

// TxManager дает те же гарантии, что serializable транзакция с FOR UPDATE:
// замыкания выполняются строго по одному, ошибка откатывает все изменения замыкания.
type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// вложенный вызов переиспользует внешнюю транзакцию
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	tx := &memTx{}
	err := fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		m.rollback(tx)
		return err
	}
	return nil
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (m *TxManager) rollback(tx *memTx) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}
