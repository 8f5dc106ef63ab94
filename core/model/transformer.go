package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/dataset"
)

// CategoricalEncoder は1列分のカテゴリ値を数値表現へ変換するエンコーダのインターフェース
//
// Transformの戻り値は n_samples × NOutputs() の行列
type CategoricalEncoder interface {
	// Fit は列の値からカテゴリ集合を学習する
	Fit(values []dataset.Value) error

	// Transform は学習済みのカテゴリで値を数値へ変換する
	Transform(values []dataset.Value) (*mat.Dense, error)

	// InverseTransform は数値表現を元のカテゴリへ戻す
	InverseTransform(X mat.Matrix) ([]dataset.Value, error)

	// Classes は学習したカテゴリを昇順で返す
	Classes() []dataset.Value

	// NOutputs は1列あたりの出力列数を返す
	NOutputs() int

	// IsFitted は学習済みかどうかを返す
	IsFitted() bool
}

// DatasetTransformer はデータセット単位で学習・変換を行う変換器のインターフェース
type DatasetTransformer interface {
	// FitTransform は保持しているデータセットで学習し、変換結果を返す
	FitTransform() (*dataset.Dataset, error)

	// Transform は学習済みのエンコーダで新しいデータセットを変換する
	Transform(ds *dataset.Dataset) (*dataset.Dataset, error)

	// InverseTransform は変換済みデータセットを元のカテゴリへ戻す
	InverseTransform(ds *dataset.Dataset) (*dataset.Dataset, error)
}

// ParameterGetter はハイパーパラメータを公開するモデルのインターフェース
type ParameterGetter interface {
	// GetParams はハイパーパラメータを返す
	GetParams() map[string]interface{}
}
