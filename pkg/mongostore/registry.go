package mongostore

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// Registry returns a bson registry that maps uuid.UUID to the native binary
// UUID subtype. Pass it to the client via options.Client().SetRegistry.
func Registry() *bson.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(uuidType, uuidCodec{})
	reg.RegisterTypeDecoder(uuidType, uuidCodec{})
	return reg
}

type uuidCodec struct{}

func (uuidCodec) EncodeValue(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != uuidType {
		return bson.ValueEncoderError{
			Name:     "uuidCodec.EncodeValue",
			Types:    []reflect.Type{uuidType},
			Received: val,
		}
	}

	id := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(id[:], bson.TypeBinaryUUID)
}

func (uuidCodec) DecodeValue(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != uuidType {
		return bson.ValueDecoderError{
			Name:     "uuidCodec.DecodeValue",
			Types:    []reflect.Type{uuidType},
			Received: val,
		}
	}

	data, subtype, err := vr.ReadBinary()
	if err != nil {
		return err
	}
	if subtype != bson.TypeBinaryUUID && subtype != bson.TypeBinaryUUIDOld {
		return fmt.Errorf("mongostore: unexpected binary subtype %d for uuid", subtype)
	}

	id, err := uuid.FromBytes(data)
	if err != nil {
		return fmt.Errorf("mongostore: decode uuid: %w", err)
	}
	val.Set(reflect.ValueOf(id))
	return nil
}
