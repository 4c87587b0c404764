package mysql

// Schema for the catalog tables. The seeder applies it on startup; the
// integration test applies it against a throwaway container.
const (
	createHotelsSQL = `
CREATE TABLE IF NOT EXISTS hotels (
  id          BIGINT PRIMARY KEY,
  name        VARCHAR(255) NOT NULL,
  location    VARCHAR(255) NOT NULL,
  rating      DOUBLE NOT NULL DEFAULT 0,
  reviews     INT NOT NULL DEFAULT 0,
  price       INT NOT NULL DEFAULT 0,
  image       TEXT,
  distance    VARCHAR(255),
  amenities   JSON,
  description TEXT,
  updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

	createRoomsSQL = `
CREATE TABLE IF NOT EXISTS rooms (
  hotel_id BIGINT NOT NULL,
  id       BIGINT NOT NULL,
  name     VARCHAR(255) NOT NULL,
  capacity INT NOT NULL,
  size     INT NOT NULL,
  price    INT NOT NULL,
  image    TEXT,
  PRIMARY KEY (hotel_id, id),
  CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`
)

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, location, rating, reviews, price, image, distance, amenities, description)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  location    = VALUES(location),
  rating      = VALUES(rating),
  reviews     = VALUES(reviews),
  price       = VALUES(price),
  image       = VALUES(image),
  distance    = VALUES(distance),
  amenities   = VALUES(amenities),
  description = VALUES(description),
  updated_at  = CURRENT_TIMESTAMP
`

const insertRoomsPrefix = "INSERT INTO rooms\n  (hotel_id, id, name, capacity, size, price, image)\nVALUES "

const insertRoomsOnDup = ` ON DUPLICATE KEY UPDATE
  name     = VALUES(name),
  capacity = VALUES(capacity),
  size     = VALUES(size),
  price    = VALUES(price),
  image    = VALUES(image)
`

const getHotelSQL = `
SELECT id, name, location, rating, reviews, price, image, distance, amenities, description
FROM hotels
WHERE id = ?
`

const listHotelsSQL = `
SELECT id, name, location, rating, reviews, price, image, distance, amenities, description
FROM hotels
ORDER BY id
`

const listRoomsSQL = `
SELECT hotel_id, id, name, capacity, size, price, image
FROM rooms
WHERE hotel_id IN (%s)
ORDER BY hotel_id, id
`
