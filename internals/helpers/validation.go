package helper

import (
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	idLocale "github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	idTranslations "github.com/go-playground/validator/v10/translations/id"

	"quizapp_backend/internals/constants"
)

// FieldErrors peta field (dot path, mis. "questions.0.options.1.title") ke pesan.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Merge(other FieldErrors) {
	for k, msgs := range other {
		f[k] = append(f[k], msgs...)
	}
}

func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Fields daftar key terurut, enak untuk log.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var booleanish = map[string]struct{}{
	"0": {}, "1": {}, "true": {}, "false": {},
}

type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	locale := idLocale.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("id")
	_ = idTranslations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("booleanish", func(fl validator.FieldLevel) bool {
		_, ok := booleanish[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
		return ok
	})
	_ = v.RegisterTranslation("booleanish", trans,
		func(t ut.Translator) error {
			return t.Add("booleanish", "{0} harus bernilai benar atau salah", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("booleanish", fe.Field())
			return msg
		},
	)

	return &Validator{v: v, trans: trans}
}

// Validate mengembalikan nil kalau struct lolos.
func (v *Validator) Validate(s any) FieldErrors {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	out := FieldErrors{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out.Add("payload", err.Error())
		return out
	}
	for _, fe := range ve {
		out.Add(FieldKey(fe.Namespace()), fe.Translate(v.trans))
	}
	return out
}

var namespaceReplacer = strings.NewReplacer("[", ".", "]", "")

// FieldKey "CreateQuizRequest.questions[0].options[1].title" -> "questions.0.options.1.title"
func FieldKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	return namespaceReplacer.Replace(namespace)
}

// ValidateImage cek ekstensi, ukuran, dan isi berkas (sniff) untuk upload gambar opsional.
func ValidateImage(errs FieldErrors, field string, fh *multipart.FileHeader, maxKB int) {
	if fh == nil {
		return
	}
	if !constants.IsImageFile(fh.Filename) {
		errs.Add(field, fmt.Sprintf("%s harus berupa berkas berjenis: jpeg, png, jpg.", field))
		return
	}
	if maxKB > 0 && fh.Size > int64(maxKB)*1024 {
		errs.Add(field, fmt.Sprintf("%s tidak boleh lebih besar dari %d kilobita.", field, maxKB))
		return
	}
	f, err := fh.Open()
	if err != nil {
		errs.Add(field, fmt.Sprintf("%s gagal dibaca.", field))
		return
	}
	defer f.Close()
	mt, err := mimetype.DetectReader(f)
	if err != nil || !constants.IsImageMIME(mt.String()) {
		errs.Add(field, fmt.Sprintf("%s harus berupa gambar.", field))
	}
}
