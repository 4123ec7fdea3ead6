package entities

import (
	"time"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

// VirtualItem models the persisted representation of a catalog entry.
type VirtualItem struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey"`

	Platform                  string `gorm:"column:platform;type:text;not null;index:idx_virtual_items_platform"`
	PlatformURL               string `gorm:"column:platform_url;type:text;not null"`
	IntellectualProperty      string `gorm:"column:intellectual_property;type:text;not null;index:idx_virtual_items_intellectual_property"`
	AgeRating                 string `gorm:"column:age_rating;type:text;not null"`
	Category                  string `gorm:"column:category;type:text;not null;index:idx_virtual_items_category"`
	Type                      string `gorm:"column:type;type:text;not null;index:idx_virtual_items_type"`
	SubType                   string `gorm:"column:sub_type;type:text;not null"`
	Title                     string `gorm:"column:title;type:text;not null"`
	MintSupply                string `gorm:"column:mint_supply;type:text;not null"`
	IncludeSerialNumber       string `gorm:"column:include_serial_number;type:text;not null"`
	PreMintCount              string `gorm:"column:pre_mint_count;type:text;not null"`
	ReservedSerialNumbers     string `gorm:"column:reserved_serial_numbers;type:text;not null"`
	SerialNumberTransferOrder string `gorm:"column:serial_number_transfer_order;type:text;not null"`
	PurchaseCurrency1         string `gorm:"column:purchase_currency1;type:text;not null"`
	PurchasePrice1            string `gorm:"column:purchase_price1;type:text;not null"`
	AndOr                     string `gorm:"column:and_or;type:text;not null"`
	PurchaseCurrency2         string `gorm:"column:purchase_currency2;type:text;not null"`
	PurchasePrice2            string `gorm:"column:purchase_price2;type:text;not null"`
	UnlockCurrency            string `gorm:"column:unlock_currency;type:text;not null"`
	UnlockThreshold           string `gorm:"column:unlock_threshold;type:text;not null"`
	MediaPrimaryGoogleURL     string `gorm:"column:media_primary_google_url;type:text;not null"`
	MediaDisplayGoogleURL     string `gorm:"column:media_display_google_url;type:text;not null"`
	MediaPrimaryS3Bucket      string `gorm:"column:media_primary_s3_bucket;type:text;not null"`
	MediaDisplayS3Bucket      string `gorm:"column:media_display_s3_bucket;type:text;not null"`
	Transferability           string `gorm:"column:transferability;type:text;not null"`
	P2PSaleRoyalty            string `gorm:"column:p2p_sale_royalty;type:text;not null"`
	Description               string `gorm:"column:description;type:text;not null"`
	MintLimitPerWallet        string `gorm:"column:mint_limit_per_wallet;type:text;not null"`
	P2PLimitPerWallet         string `gorm:"column:p2p_limit_per_wallet;type:text;not null"`
	Collection                string `gorm:"column:collection;type:text;not null;index:idx_virtual_items_collection"`
	Series                    string `gorm:"column:series;type:text;not null;index:idx_virtual_items_series"`
	Episode                   string `gorm:"column:episode;type:text;not null"`
	Set                       string `gorm:"column:set_name;type:text;not null"`
	Season                    string `gorm:"column:season;type:text;not null"`
	Level                     string `gorm:"column:level;type:text;not null"`
	Rank                      string `gorm:"column:rank;type:text;not null"`
	Enhancement               string `gorm:"column:enhancement;type:text;not null"`
	LevelRankUpgradeType      string `gorm:"column:level_rank_upgrade_type;type:text;not null"`
	Artist                    string `gorm:"column:artist;type:text;not null;index:idx_virtual_items_artist"`
	EditionType               string `gorm:"column:edition_type;type:text;not null"`
	Rarity                    string `gorm:"column:rarity;type:text;not null;index:idx_virtual_items_rarity"`
	BonusMediaURL             string `gorm:"column:bonus_media_url;type:text;not null"`
	Copyright                 string `gorm:"column:copyright;type:text;not null"`
	Comments                  string `gorm:"column:comments;type:text;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false;index:idx_virtual_items_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (VirtualItem) TableName() string {
	return "virtual_items"
}

// NewSchemaVirtualItem converts a domain item into its row.
func NewSchemaVirtualItem(item *domain.VirtualItem) *VirtualItem {
	return &VirtualItem{
		ID: item.ID,

		Platform:                  item.Platform,
		PlatformURL:               item.PlatformURL,
		IntellectualProperty:      item.IntellectualProperty,
		AgeRating:                 item.AgeRating,
		Category:                  item.Category,
		Type:                      item.Type,
		SubType:                   item.SubType,
		Title:                     item.Title,
		MintSupply:                item.MintSupply,
		IncludeSerialNumber:       item.IncludeSerialNumber,
		PreMintCount:              item.PreMintCount,
		ReservedSerialNumbers:     item.ReservedSerialNumbers,
		SerialNumberTransferOrder: item.SerialNumberTransferOrder,
		PurchaseCurrency1:         item.PurchaseCurrency1,
		PurchasePrice1:            item.PurchasePrice1,
		AndOr:                     item.AndOr,
		PurchaseCurrency2:         item.PurchaseCurrency2,
		PurchasePrice2:            item.PurchasePrice2,
		UnlockCurrency:            item.UnlockCurrency,
		UnlockThreshold:           item.UnlockThreshold,
		MediaPrimaryGoogleURL:     item.MediaPrimaryGoogleURL,
		MediaDisplayGoogleURL:     item.MediaDisplayGoogleURL,
		MediaPrimaryS3Bucket:      item.MediaPrimaryS3Bucket,
		MediaDisplayS3Bucket:      item.MediaDisplayS3Bucket,
		Transferability:           item.Transferability,
		P2PSaleRoyalty:            item.P2PSaleRoyalty,
		Description:               item.Description,
		MintLimitPerWallet:        item.MintLimitPerWallet,
		P2PLimitPerWallet:         item.P2PLimitPerWallet,
		Collection:                item.Collection,
		Series:                    item.Series,
		Episode:                   item.Episode,
		Set:                       item.Set,
		Season:                    item.Season,
		Level:                     item.Level,
		Rank:                      item.Rank,
		Enhancement:               item.Enhancement,
		LevelRankUpgradeType:      item.LevelRankUpgradeType,
		Artist:                    item.Artist,
		EditionType:               item.EditionType,
		Rarity:                    item.Rarity,
		BonusMediaURL:             item.BonusMediaURL,
		Copyright:                 item.Copyright,
		Comments:                  item.Comments,

		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

// EtoD converts the row back into a domain item with UTC timestamps.
func (e *VirtualItem) EtoD() *domain.VirtualItem {
	return &domain.VirtualItem{
		ID: e.ID,

		Platform:                  e.Platform,
		PlatformURL:               e.PlatformURL,
		IntellectualProperty:      e.IntellectualProperty,
		AgeRating:                 e.AgeRating,
		Category:                  e.Category,
		Type:                      e.Type,
		SubType:                   e.SubType,
		Title:                     e.Title,
		MintSupply:                e.MintSupply,
		IncludeSerialNumber:       e.IncludeSerialNumber,
		PreMintCount:              e.PreMintCount,
		ReservedSerialNumbers:     e.ReservedSerialNumbers,
		SerialNumberTransferOrder: e.SerialNumberTransferOrder,
		PurchaseCurrency1:         e.PurchaseCurrency1,
		PurchasePrice1:            e.PurchasePrice1,
		AndOr:                     e.AndOr,
		PurchaseCurrency2:         e.PurchaseCurrency2,
		PurchasePrice2:            e.PurchasePrice2,
		UnlockCurrency:            e.UnlockCurrency,
		UnlockThreshold:           e.UnlockThreshold,
		MediaPrimaryGoogleURL:     e.MediaPrimaryGoogleURL,
		MediaDisplayGoogleURL:     e.MediaDisplayGoogleURL,
		MediaPrimaryS3Bucket:      e.MediaPrimaryS3Bucket,
		MediaDisplayS3Bucket:      e.MediaDisplayS3Bucket,
		Transferability:           e.Transferability,
		P2PSaleRoyalty:            e.P2PSaleRoyalty,
		Description:               e.Description,
		MintLimitPerWallet:        e.MintLimitPerWallet,
		P2PLimitPerWallet:         e.P2PLimitPerWallet,
		Collection:                e.Collection,
		Series:                    e.Series,
		Episode:                   e.Episode,
		Set:                       e.Set,
		Season:                    e.Season,
		Level:                     e.Level,
		Rank:                      e.Rank,
		Enhancement:               e.Enhancement,
		LevelRankUpgradeType:      e.LevelRankUpgradeType,
		Artist:                    e.Artist,
		EditionType:               e.EditionType,
		Rarity:                    e.Rarity,
		BonusMediaURL:             e.BonusMediaURL,
		Copyright:                 e.Copyright,
		Comments:                  e.Comments,

		CreatedAt: e.CreatedAt.UTC(),
		UpdatedAt: e.UpdatedAt.UTC(),
	}
}
