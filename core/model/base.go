package model

// EstimatorState はエンコーダの学習状態を表す
type EstimatorState int

const (
	// NotFitted はエンコーダが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はエンコーダが学習済みの状態
	Fitted
)

// String は状態の文字列表現を返す
func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not_fitted"
}

// BaseEstimator は全てのエンコーダの基底となる構造体
// 状態遷移は NotFitted → Fitted の一方向のみ（Resetを除く）
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はエンコーダが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はエンコーダを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// State は現在の学習状態を返す
func (e *BaseEstimator) State() EstimatorState {
	return e.state
}

// Reset はエンコーダを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
