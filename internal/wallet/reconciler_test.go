package wallet

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockPriceCache struct{ mock.Mock }

func (m *MockPriceCache) Get() (float64, bool) {
	args := m.Called()
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockPriceCache) Set(price float64) {
	m.Called(price)
}

// --- init sequence ---

func TestReconciler_Init_EmptyCacheNoBootstrap_Unknown(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()

	r := NewReconciler(mockCache)

	require.Equal(t, 0.0, r.CurrentPrice())
	mockCache.AssertNotCalled(t, "Set", mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestReconciler_Init_CacheHitWins(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(642.5, true).Once()

	r := NewReconciler(mockCache)
	r.SetBootstrapPrice(500)

	require.Equal(t, 642.5, r.CurrentPrice())
	mockCache.AssertNotCalled(t, "Set", mock.Anything)
}

func TestReconciler_Init_BootstrapAdoptedAndWrittenThrough(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()
	mockCache.On("Set", 50000.0).Return().Once()

	r := NewReconciler(mockCache)
	r.SetBootstrapPrice(50000)

	require.Equal(t, 50000.0, r.CurrentPrice())
	mockCache.AssertExpectations(t)
}

// --- UpdatePrice ---

func TestReconciler_UpdatePrice_Idempotent_SingleCacheWrite(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()
	mockCache.On("Set", 123.45).Return().Once()

	r := NewReconciler(mockCache)
	r.UpdatePrice(123.45)
	r.UpdatePrice(123.45)

	require.Equal(t, 123.45, r.CurrentPrice())
	mockCache.AssertNumberOfCalls(t, "Set", 1)
}

func TestReconciler_UpdatePrice_ChangeWritesAgain(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()
	mockCache.On("Set", mock.Anything).Return()

	r := NewReconciler(mockCache)
	r.UpdatePrice(100)
	r.UpdatePrice(200)

	require.Equal(t, 200.0, r.CurrentPrice())
	mockCache.AssertNumberOfCalls(t, "Set", 2)
}

// --- self-healing ---

func TestReconciler_Reconcile_RetriesWhileUnknown(t *testing.T) {
	mockCache := new(MockPriceCache)
	// First pass: cache empty, no bootstrap -> still unknown.
	mockCache.On("Get").Return(0.0, false).Twice()

	r := NewReconciler(mockCache)
	require.Equal(t, 0.0, r.CurrentPrice())

	// Cache gets populated externally; next reconcile pass picks it up.
	r.Reconcile()
	require.Equal(t, 0.0, r.CurrentPrice())

	mockCache.ExpectedCalls = nil
	mockCache.On("Get").Return(777.0, true).Once()
	r.Reconcile()

	require.Equal(t, 777.0, r.CurrentPrice())
}

func TestReconciler_Reconcile_NoopOnceKnown(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()
	mockCache.On("Set", 55.0).Return().Once()

	r := NewReconciler(mockCache)
	r.UpdatePrice(55)

	// Known price: reconcile must not re-read the cache.
	r.Reconcile()
	r.Reconcile()

	require.Equal(t, 55.0, r.CurrentPrice())
	mockCache.AssertNumberOfCalls(t, "Get", 1)
}

func TestReconciler_LateBootstrap_DoesNotOverrideLivePrice(t *testing.T) {
	mockCache := new(MockPriceCache)
	mockCache.On("Get").Return(0.0, false).Once()
	mockCache.On("Set", 300.0).Return().Once()

	r := NewReconciler(mockCache)
	r.UpdatePrice(300)
	r.SetBootstrapPrice(250)

	require.Equal(t, 300.0, r.CurrentPrice())
}
