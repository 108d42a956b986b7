package extractor

// MockEngine is an in-memory Engine for tests. Each entry of Pages is the text
// of one page.
type MockEngine struct {
	EngineName   string
	Pages        []string
	AvailableErr error
	OpenErr      error
	// PageErrs maps a 1-based page number to the error PageText returns for it.
	PageErrs map[int]error

	// OpenedPaths records every path passed to Open.
	OpenedPaths []string
	// Closed counts calls to Close on documents opened by this engine.
	Closed int
}

// NewMockEngine creates a MockEngine serving the given page texts.
func NewMockEngine(pages ...string) *MockEngine {
	return &MockEngine{EngineName: "mock", Pages: pages}
}

// Name implements Engine.
func (m *MockEngine) Name() string {
	if m.EngineName == "" {
		return "mock"
	}
	return m.EngineName
}

// Available implements Engine.
func (m *MockEngine) Available() error {
	return m.AvailableErr
}

// Open implements Engine.
func (m *MockEngine) Open(path string) (Document, error) {
	m.OpenedPaths = append(m.OpenedPaths, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return &mockDocument{engine: m}, nil
}

type mockDocument struct {
	engine *MockEngine
}

func (d *mockDocument) NumPages() int {
	return len(d.engine.Pages)
}

func (d *mockDocument) PageText(n int) (string, error) {
	if err := checkPageRange(n, len(d.engine.Pages)); err != nil {
		return "", err
	}
	if err, ok := d.engine.PageErrs[n]; ok {
		return "", err
	}
	return d.engine.Pages[n-1], nil
}

func (d *mockDocument) Close() error {
	d.engine.Closed++
	return nil
}
