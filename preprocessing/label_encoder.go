package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/core/model"
	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// LabelEncoder はscikit-learn互換のラベルエンコーダ
// カテゴリを昇順に並べ、0からk-1までの整数コードを割り当てる
type LabelEncoder struct {
	model.BaseEstimator

	classes []dataset.Value
	index   map[dataset.Value]int
}

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewLabelEncoder()
//	err := enc.Fit(values)
//	codes, err := enc.TransformCodes(values)
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit は値からカテゴリ集合を学習する
//
// パラメータ:
//   - values: 学習に使う列の値（欠損値を含んではならない）
//
// 戻り値:
//   - error: 空データまたは欠損値の場合
func (e *LabelEncoder) Fit(values []dataset.Value) error {
	classes, index, err := uniqueSorted("LabelEncoder.Fit", values)
	if err != nil {
		return err
	}
	e.classes = classes
	e.index = index
	e.SetFitted()
	return nil
}

// TransformCodes は値を整数コードへ変換する
// 学習時に存在しなかった値は UnknownCategoryError になる
func (e *LabelEncoder) TransformCodes(values []dataset.Value) ([]int, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}
	return lookup("LabelEncoder.Transform", e.index, values)
}

// Transform は値を n_samples × 1 のコード行列へ変換する
func (e *LabelEncoder) Transform(values []dataset.Value) (*mat.Dense, error) {
	codes, err := e.TransformCodes(values)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(codes))
	for i, c := range codes {
		data[i] = float64(c)
	}
	return mat.NewDense(len(codes), 1, data), nil
}

// FitTransform は学習と変換を同時に実行する
func (e *LabelEncoder) FitTransform(values []dataset.Value) (*mat.Dense, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseCodes は整数コードを元のカテゴリへ戻す
func (e *LabelEncoder) InverseCodes(codes []int) ([]dataset.Value, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}
	out := make([]dataset.Value, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(e.classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("code %d at row %d is out of range [0, %d)", c, i, len(e.classes)))
		}
		out[i] = e.classes[c]
	}
	return out, nil
}

// InverseTransform は n_samples × 1 のコード行列を元のカテゴリへ戻す
func (e *LabelEncoder) InverseTransform(X mat.Matrix) ([]dataset.Value, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}
	r, c := X.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError("LabelEncoder.InverseTransform", 1, c, 1)
	}
	codes := make([]int, r)
	for i := 0; i < r; i++ {
		v := X.At(i, 0)
		if v != math.Trunc(v) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform",
				fmt.Sprintf("code %g at row %d is not an integer", v, i))
		}
		codes[i] = int(v)
	}
	return e.InverseCodes(codes)
}

// Classes は学習したカテゴリを昇順で返す
func (e *LabelEncoder) Classes() []dataset.Value {
	return copyClasses(e.classes)
}

// NOutputs は常に1を返す
func (e *LabelEncoder) NOutputs() int {
	return 1
}

// GetParams はエンコーダのパラメータを取得する
func (e *LabelEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{}
}

// String はエンコーダの文字列表現を返す
func (e *LabelEncoder) String() string {
	if !e.IsFitted() {
		return "LabelEncoder()"
	}
	return fmt.Sprintf("LabelEncoder(classes=%s)", formatClasses(e.classes))
}
