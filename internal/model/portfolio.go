package model

// SnapshotHistoryLimit caps the number of retained snapshots per portfolio.
// When the cap is exceeded the oldest entry is evicted first.
const SnapshotHistoryLimit = 100

// DefaultUserID is the tenant used when the request layer supplies none.
const DefaultUserID = "default"

// Portfolio is the per-user aggregate and persistence unit: assets, savings
// goals, and the bounded net worth history, persisted as one document.
//
// Version is the optimistic concurrency token maintained by the repository.
// It is not part of the serialized document.
type Portfolio struct {
	UserID          string             `json:"userId"`
	Assets          []Asset            `json:"assets"`
	Goals           []SavingsGoal      `json:"goals"`
	SnapshotHistory []NetWorthSnapshot `json:"snapshotHistory"`
	Version         int64              `json:"-"`
}

// NewPortfolio creates an empty portfolio for the given user.
func NewPortfolio(userID string) *Portfolio {
	return &Portfolio{
		UserID:          userID,
		Assets:          []Asset{},
		Goals:           []SavingsGoal{},
		SnapshotHistory: []NetWorthSnapshot{},
	}
}

// FindAsset returns the index of the asset with the given id.
func (p *Portfolio) FindAsset(id string) (int, bool) {
	for i := range p.Assets {
		if p.Assets[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindGoal returns the index of the goal with the given id.
func (p *Portfolio) FindGoal(id string) (int, bool) {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// AppendSnapshot appends a snapshot to the history and enforces the
// retention cap, dropping the oldest entries first.
func (p *Portfolio) AppendSnapshot(s NetWorthSnapshot) {
	p.SnapshotHistory = append(p.SnapshotHistory, s)
	if len(p.SnapshotHistory) > SnapshotHistoryLimit {
		p.SnapshotHistory = p.SnapshotHistory[len(p.SnapshotHistory)-SnapshotHistoryLimit:]
	}
}
