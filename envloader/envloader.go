package envloader

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// source resolve o valor textual de um campo a partir das suas tags e
// informa de qual camada ele veio. Retorna ok=false quando o campo deve
// permanecer intocado.
type source func(envTag, defaultTag string) (value string, origin Origin, ok bool)

// Load preenche uma struct com valores de variáveis de ambiente
// baseado nas tags "env" e "envDefault".
//
// Variáveis definidas têm prioridade sobre o default; campos sem variável
// e sem default mantêm o valor atual.
func Load(config interface{}) error {
	return walk(config, func(envTag, defaultTag string) (string, Origin, bool) {
		if v, ok := os.LookupEnv(envTag); ok && v != "" {
			return v, OriginEnv, true
		}
		return defaultTag, OriginDefault, defaultTag != ""
	})
}

// Defaults aplica apenas os valores de "envDefault", ignorando o ambiente.
//
// Usado como primeira camada quando a configuração também vem de arquivo:
// Defaults -> arquivo -> Override.
func Defaults(config interface{}) error {
	return walk(config, func(_, defaultTag string) (string, Origin, bool) {
		return defaultTag, OriginDefault, defaultTag != ""
	})
}

// Override aplica somente as variáveis de ambiente definidas e não vazias,
// preservando qualquer valor já presente nos demais campos.
func Override(config interface{}) error {
	return walk(config, func(envTag, _ string) (string, Origin, bool) {
		v, ok := os.LookupEnv(envTag)
		return v, OriginEnv, ok && v != ""
	})
}

// MustLoad é similar ao Load, mas panic em caso de erro
func MustLoad(config interface{}) {
	if err := Load(config); err != nil {
		panic(err)
	}
}

func walk(config interface{}, src source) error {
	val := reflect.ValueOf(config)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return &InvalidConfigError{Value: reflect.TypeOf(config)}
	}
	return loadStruct(val.Elem(), src)
}

// loadStruct processa recursivamente uma struct
func loadStruct(val reflect.Value, src source) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStruct(field, src); err != nil {
				return err
			}
			continue
		}

		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem(), src); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		value, origin, ok := src(envTag, fieldType.Tag.Get("envDefault"))
		if !ok {
			continue
		}

		if err := setFieldValue(field, value); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     value,
				Origin:    origin,
				Err:       err,
			}
		}
	}

	return nil
}

// setFieldValue define o valor de um campo baseado no seu tipo
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(uintValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return &UnsupportedTypeError{Type: field.Type()}
		}
		parts := strings.Split(value, ",")
		out := reflect.MakeSlice(field.Type(), 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = reflect.Append(out, reflect.ValueOf(p).Convert(field.Type().Elem()))
			}
		}
		field.Set(out)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}
