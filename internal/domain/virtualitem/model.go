package virtualitem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VirtualItem is a catalog entry describing one collectible.
type VirtualItem struct {
	ID string `json:"id"`

	Platform                  string `json:"platform"`
	PlatformURL               string `json:"platformUrl"`
	IntellectualProperty      string `json:"intellectualProperty"`
	AgeRating                 string `json:"ageRating"`
	Category                  string `json:"category"`
	Type                      string `json:"type"`
	SubType                   string `json:"subType"`
	Title                     string `json:"title"`
	MintSupply                string `json:"mintSupply"`
	IncludeSerialNumber       string `json:"includeSerialNumber"`
	PreMintCount              string `json:"preMintCount"`
	ReservedSerialNumbers     string `json:"reservedSerialNumbers"`
	SerialNumberTransferOrder string `json:"serialNumberTransferOrder"`
	PurchaseCurrency1         string `json:"purchaseCurrency1"`
	PurchasePrice1            string `json:"purchasePrice1"`
	AndOr                     string `json:"andOr"`
	PurchaseCurrency2         string `json:"purchaseCurrency2"`
	PurchasePrice2            string `json:"purchasePrice2"`
	UnlockCurrency            string `json:"unlockCurrency"`
	UnlockThreshold           string `json:"unlockThreshold"`
	MediaPrimaryGoogleURL     string `json:"mediaPrimaryGoogleUrl"`
	MediaDisplayGoogleURL     string `json:"mediaDisplayGoogleUrl"`
	MediaPrimaryS3Bucket      string `json:"mediaPrimaryS3Bucket"`
	MediaDisplayS3Bucket      string `json:"mediaDisplayS3Bucket"`
	Transferability           string `json:"transferability"`
	P2PSaleRoyalty            string `json:"p2pSaleRoyalty"`
	Description               string `json:"description"`
	MintLimitPerWallet        string `json:"mintLimitPerWallet"`
	P2PLimitPerWallet         string `json:"p2pLimitPerWallet"`
	Collection                string `json:"collection"`
	Series                    string `json:"series"`
	Episode                   string `json:"episode"`
	Set                       string `json:"set"`
	Season                    string `json:"season"`
	Level                     string `json:"level"`
	Rank                      string `json:"rank"`
	Enhancement               string `json:"enhancement"`
	LevelRankUpgradeType      string `json:"levelRankUpgradeType"`
	Artist                    string `json:"artist"`
	EditionType               string `json:"editionType"`
	Rarity                    string `json:"rarity"`
	BonusMediaURL             string `json:"bonusMediaUrl"`
	Copyright                 string `json:"copyright"`
	Comments                  string `json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Fields is a partial set of attribute values keyed by JSON key. It carries
// create and update input.
type Fields map[string]string

// UnmarshalJSON accepts string, number, boolean and null values so that
// spreadsheet-derived payloads with unquoted numbers still decode. Null
// becomes "".
func (f *Fields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Fields, len(raw))
	for key, value := range raw {
		v, err := scalarString(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out[key] = v
	}
	*f = out
	return nil
}

func scalarString(value json.RawMessage) (string, error) {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unsupported value %s", string(value))
	}
}

// Known drops keys that are not data attributes, including id and the
// timestamps.
func (f Fields) Known() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if _, ok := LookupField(k); ok {
			out[k] = v
		}
	}
	return out
}

// Missing returns the keys from required that are absent or blank, in the
// order given.
func (f Fields) Missing(required []string) []string {
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(f[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func (v *VirtualItem) ref(key string) *string {
	switch key {
	case KeyPlatform:
		return &v.Platform
	case KeyPlatformURL:
		return &v.PlatformURL
	case KeyIntellectualProperty:
		return &v.IntellectualProperty
	case KeyAgeRating:
		return &v.AgeRating
	case KeyCategory:
		return &v.Category
	case KeyType:
		return &v.Type
	case KeySubType:
		return &v.SubType
	case KeyTitle:
		return &v.Title
	case KeyMintSupply:
		return &v.MintSupply
	case KeyIncludeSerialNumber:
		return &v.IncludeSerialNumber
	case KeyPreMintCount:
		return &v.PreMintCount
	case KeyReservedSerialNumbers:
		return &v.ReservedSerialNumbers
	case KeySerialNumberTransferOrder:
		return &v.SerialNumberTransferOrder
	case KeyPurchaseCurrency1:
		return &v.PurchaseCurrency1
	case KeyPurchasePrice1:
		return &v.PurchasePrice1
	case KeyAndOr:
		return &v.AndOr
	case KeyPurchaseCurrency2:
		return &v.PurchaseCurrency2
	case KeyPurchasePrice2:
		return &v.PurchasePrice2
	case KeyUnlockCurrency:
		return &v.UnlockCurrency
	case KeyUnlockThreshold:
		return &v.UnlockThreshold
	case KeyMediaPrimaryGoogleURL:
		return &v.MediaPrimaryGoogleURL
	case KeyMediaDisplayGoogleURL:
		return &v.MediaDisplayGoogleURL
	case KeyMediaPrimaryS3Bucket:
		return &v.MediaPrimaryS3Bucket
	case KeyMediaDisplayS3Bucket:
		return &v.MediaDisplayS3Bucket
	case KeyTransferability:
		return &v.Transferability
	case KeyP2PSaleRoyalty:
		return &v.P2PSaleRoyalty
	case KeyDescription:
		return &v.Description
	case KeyMintLimitPerWallet:
		return &v.MintLimitPerWallet
	case KeyP2PLimitPerWallet:
		return &v.P2PLimitPerWallet
	case KeyCollection:
		return &v.Collection
	case KeySeries:
		return &v.Series
	case KeyEpisode:
		return &v.Episode
	case KeySet:
		return &v.Set
	case KeySeason:
		return &v.Season
	case KeyLevel:
		return &v.Level
	case KeyRank:
		return &v.Rank
	case KeyEnhancement:
		return &v.Enhancement
	case KeyLevelRankUpgradeType:
		return &v.LevelRankUpgradeType
	case KeyArtist:
		return &v.Artist
	case KeyEditionType:
		return &v.EditionType
	case KeyRarity:
		return &v.Rarity
	case KeyBonusMediaURL:
		return &v.BonusMediaURL
	case KeyCopyright:
		return &v.Copyright
	case KeyComments:
		return &v.Comments
	}
	return nil
}

// Value returns the value stored under key.
func (v *VirtualItem) Value(key string) (string, bool) {
	p := v.ref(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetValue assigns value to key and reports whether key names a data attribute.
func (v *VirtualItem) SetValue(key, value string) bool {
	p := v.ref(key)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Apply copies every known key of fields onto the item.
func (v *VirtualItem) Apply(fields Fields) {
	for k, val := range fields {
		v.SetValue(k, val)
	}
}

// Fields returns all data attributes as a map.
func (v *VirtualItem) Fields() Fields {
	out := make(Fields, len(schema))
	for _, f := range schema {
		out[f.Key] = *v.ref(f.Key)
	}
	return out
}

// Clone returns an independent copy.
func (v *VirtualItem) Clone() *VirtualItem {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
