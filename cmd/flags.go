package cmd

import (
	"github.com/shouni/gemini-image-edit/pkg/domain"
	"github.com/spf13/pflag"
)

// aspectFlag は列挙値だけを受け付ける --aspect 用の pflag.Value です。
type aspectFlag struct {
	value domain.AspectRatio
}

var _ pflag.Value = (*aspectFlag)(nil)

func (f *aspectFlag) String() string { return string(f.value) }

func (f *aspectFlag) Set(s string) error {
	ar, err := domain.ParseAspectRatio(s)
	if err != nil {
		return err
	}
	f.value = ar
	return nil
}

func (f *aspectFlag) Type() string { return "ratio" }

// sizeFlag は --size 用の pflag.Value です。
type sizeFlag struct {
	value domain.ImageSize
}

var _ pflag.Value = (*sizeFlag)(nil)

func (f *sizeFlag) String() string { return string(f.value) }

func (f *sizeFlag) Set(s string) error {
	size, err := domain.ParseImageSize(s)
	if err != nil {
		return err
	}
	f.value = size
	return nil
}

func (f *sizeFlag) Type() string { return "size" }
