package store

// Schema v1 - Initial database schema
//
// Command patterns are stored verbatim; they are validated at
// registration time, never re-validated on read.
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY,
  applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Registered codecs
CREATE TABLE IF NOT EXISTS codec (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT UNIQUE NOT NULL,
  description TEXT
);

CREATE INDEX IF NOT EXISTS idx_codec_name ON codec(name);

-- File extensions claimed by codecs. Uniqueness is global:
-- two codecs can never claim the same extension.
CREATE TABLE IF NOT EXISTS extensions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  codec INTEGER NOT NULL REFERENCES codec(id) ON DELETE CASCADE,
  extension TEXT UNIQUE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extensions_codec ON extensions(codec);
CREATE INDEX IF NOT EXISTS idx_extensions_extension ON extensions(extension);

-- Decoder command patterns, ranked by priority (higher = preferred)
CREATE TABLE IF NOT EXISTS decoder (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  priority INTEGER DEFAULT 0,
  codec INTEGER NOT NULL REFERENCES codec(id) ON DELETE CASCADE,
  command TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decoder_codec ON decoder(codec, priority);

-- Encoder command patterns, ranked by priority (higher = preferred)
CREATE TABLE IF NOT EXISTS encoder (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  priority INTEGER DEFAULT 0,
  codec INTEGER NOT NULL REFERENCES codec(id) ON DELETE CASCADE,
  command TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_encoder_codec ON encoder(codec, priority);
`
