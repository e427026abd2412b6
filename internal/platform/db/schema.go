package db

import (
	"context"
	"database/sql"
	"fmt"
)

// 起動時に冪等にテーブルを作成する。
// 「1日1セル」を守る複合ユニークキーの定義箇所はここだけ。
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS absentees (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date       CHAR(10) NOT NULL,
		name       VARCHAR(64) NOT NULL,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		KEY idx_absentees_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS daily_yard_infos (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date           CHAR(10) NOT NULL,
		loading_person VARCHAR(64) NOT NULL DEFAULT '',
		created_at     DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at     DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		UNIQUE KEY uq_daily_yard_infos_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS daily_remarks (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date       CHAR(10) NOT NULL,
		content    TEXT NOT NULL,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		UNIQUE KEY uq_daily_remarks_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS dispatch_entries (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date       CHAR(10) NOT NULL,
		vehicle_id VARCHAR(32) NOT NULL,
		slot_index INT NOT NULL,
		pickup     VARCHAR(128) NULL,
		delivery   VARCHAR(128) NULL,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		UNIQUE KEY uq_dispatch_entries_key (date, vehicle_id, slot_index)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS daily_drivers (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date        CHAR(10) NOT NULL,
		vehicle_id  VARCHAR(32) NOT NULL,
		driver_name VARCHAR(64) NOT NULL,
		created_at  DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at  DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		UNIQUE KEY uq_daily_drivers_key (date, vehicle_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shipments (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date         CHAR(10) NOT NULL,
		column_index INT NOT NULL,
		category     VARCHAR(32) NOT NULL,
		trailer      VARCHAR(64) NOT NULL DEFAULT '',
		time         VARCHAR(16) NULL,
		destination  VARCHAR(128) NULL,
		cargo        VARCHAR(128) NULL,
		remarks      VARCHAR(255) NULL,
		created_at   DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at   DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		PRIMARY KEY (id),
		UNIQUE KEY uq_shipments_key (date, column_index, category)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, q := range schemaDDL {
		if _, err := conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("スキーマ作成に失敗: %w", err)
		}
	}
	return nil
}
