package domain

import "errors"

var (
	// ErrInputNotFound は入力画像ファイルが存在しない場合のエラーです。
	ErrInputNotFound = errors.New("input image not found")
	// ErrNotImage は入力データが画像として認識できない場合のエラーです。
	ErrNotImage = errors.New("input is not an image")
	// ErrNoImage はレスポンスに画像パーツが含まれていなかった場合のエラーです。
	ErrNoImage = errors.New("no image was generated")
)
