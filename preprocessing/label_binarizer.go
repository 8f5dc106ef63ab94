package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/core/model"
	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// LabelBinarizer はカテゴリを指示変数（one-hot）へ変換するバイナライザ
// カテゴリ数kに対して常にk列を出力する（k=1, k=2 の場合も同様）
type LabelBinarizer struct {
	model.BaseEstimator

	// NegLabel は該当しない列に入る値 (デフォルト: 0)
	NegLabel float64

	// PosLabel は該当する列に入る値 (デフォルト: 1)
	PosLabel float64

	classes []dataset.Value
	index   map[dataset.Value]int
}

// NewLabelBinarizer は新しいLabelBinarizerを作成する
//
// パラメータ:
//   - negLabel: 該当しない列の値
//   - posLabel: 該当する列の値（negLabelより大きくなければならない）
//
// 使用例:
//
//	lb := preprocessing.NewLabelBinarizer(0, 1)
//	err := lb.Fit(values)
//	X, err := lb.Transform(values)
func NewLabelBinarizer(negLabel, posLabel float64) *LabelBinarizer {
	return &LabelBinarizer{
		NegLabel: negLabel,
		PosLabel: posLabel,
	}
}

// NewLabelBinarizerDefault はデフォルト設定(0/1)でLabelBinarizerを作成する
func NewLabelBinarizerDefault() *LabelBinarizer {
	return NewLabelBinarizer(0, 1)
}

// Fit は値からカテゴリ集合を学習する
func (b *LabelBinarizer) Fit(values []dataset.Value) error {
	if b.NegLabel >= b.PosLabel {
		return errors.NewValidationError("neg_label",
			fmt.Sprintf("must be strictly less than pos_label (%g)", b.PosLabel), b.NegLabel)
	}
	classes, index, err := uniqueSorted("LabelBinarizer.Fit", values)
	if err != nil {
		return err
	}
	b.classes = classes
	b.index = index
	b.SetFitted()
	return nil
}

// Transform は値を n_samples × k の指示変数行列へ変換する
// 列jはj番目（昇順）のカテゴリに対応する
func (b *LabelBinarizer) Transform(values []dataset.Value) (*mat.Dense, error) {
	if !b.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}
	codes, err := lookup("LabelBinarizer.Transform", b.index, values)
	if err != nil {
		return nil, err
	}

	k := len(b.classes)
	data := make([]float64, len(codes)*k)
	for i, c := range codes {
		row := data[i*k : (i+1)*k]
		for j := range row {
			row[j] = b.NegLabel
		}
		row[c] = b.PosLabel
	}
	return mat.NewDense(len(codes), k, data), nil
}

// FitTransform は学習と変換を同時に実行する
func (b *LabelBinarizer) FitTransform(values []dataset.Value) (*mat.Dense, error) {
	if err := b.Fit(values); err != nil {
		return nil, err
	}
	return b.Transform(values)
}

// InverseTransform は指示変数行列を元のカテゴリへ戻す
// 各行で値が最大の列（同値なら最初の列）のカテゴリを採用する
func (b *LabelBinarizer) InverseTransform(X mat.Matrix) ([]dataset.Value, error) {
	if !b.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "InverseTransform")
	}
	r, c := X.Dims()
	if c != len(b.classes) {
		return nil, errors.NewDimensionError("LabelBinarizer.InverseTransform", len(b.classes), c, 1)
	}

	out := make([]dataset.Value, r)
	for i := 0; i < r; i++ {
		best := 0
		for j := 1; j < c; j++ {
			if X.At(i, j) > X.At(i, best) {
				best = j
			}
		}
		out[i] = b.classes[best]
	}
	return out, nil
}

// Classes は学習したカテゴリを昇順で返す
func (b *LabelBinarizer) Classes() []dataset.Value {
	return copyClasses(b.classes)
}

// NOutputs は出力列数（カテゴリ数）を返す
func (b *LabelBinarizer) NOutputs() int {
	return len(b.classes)
}

// GetParams はバイナライザのパラメータを取得する
func (b *LabelBinarizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"neg_label": b.NegLabel,
		"pos_label": b.PosLabel,
	}
}

// String はバイナライザの文字列表現を返す
func (b *LabelBinarizer) String() string {
	if !b.IsFitted() {
		return fmt.Sprintf("LabelBinarizer(neg_label=%g, pos_label=%g)", b.NegLabel, b.PosLabel)
	}
	return fmt.Sprintf("LabelBinarizer(neg_label=%g, pos_label=%g, classes=%s)",
		b.NegLabel, b.PosLabel, formatClasses(b.classes))
}

var (
	_ model.CategoricalEncoder = (*LabelEncoder)(nil)
	_ model.CategoricalEncoder = (*LabelBinarizer)(nil)
	_ model.ParameterGetter    = (*LabelBinarizer)(nil)
)
